package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "task-management-system.com/task-management-system/internal/configs"
	httpapi "task-management-system.com/task-management-system/internal/http"
	"task-management-system.com/task-management-system/internal/ratelimit"
	repository "task-management-system.com/task-management-system/internal/repositories"
	"task-management-system.com/task-management-system/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task management HTTP API for users, projects and tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := config.NewViper()
		if err := v.BindPFlag("APP_HOST", cmd.Flags().Lookup("host")); err != nil {
			return err
		}
		if err := v.BindPFlag("APP_PORT", cmd.Flags().Lookup("port")); err != nil {
			return err
		}

		cfg, err := config.Load(v)
		if err != nil {
			return err
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer closeDatabase(database)

		limiter, closeLimiter, err := newLimiter(cfg)
		if err != nil {
			return err
		}
		defer closeLimiter()

		store := repository.NewStore(database)
		handler := httpapi.NewHandler(
			services.NewTaskService(store),
			services.NewProjectService(store),
			services.NewUserService(store),
			services.NewDashboardService(store, cfg.DueSoonDays),
		)

		e := echo.New()
		e.HideBanner = true
		httpapi.Register(e, handler, limiter, cfg.CORSOrigins)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("server stopped: %v", err)
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown: %v", err)
		}

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

// newLimiter picks the Redis limiter when Redis is configured so replicas
// share one window, and the in-process limiter otherwise.
func newLimiter(cfg config.Config) (ratelimit.Limiter, func(), error) {
	if cfg.RedisAddr == "" {
		return ratelimit.NewMemoryLimiter(cfg.RateLimit, time.Minute), func() {}, nil
	}

	client, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("rate limiting through redis at %s", cfg.RedisAddr)

	limiter := ratelimit.NewRedisLimiter(client, cfg.RedisRateLimitPrefix, cfg.RateLimit, time.Minute)
	return limiter, client.Close, nil
}

func init() {
	serveCmd.Flags().String("host", "", "listen host (overrides APP_HOST)")
	serveCmd.Flags().String("port", "", "listen port (overrides APP_PORT)")
	rootCmd.AddCommand(serveCmd)
}
