package cmd

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	config "task-management-system.com/task-management-system/internal/configs"
)

var rootCmd = &cobra.Command{
	Use:           "task-manager",
	Short:         "Task management service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}

// openDatabase connects with the configured driver and brings the schema
// up to date.
func openDatabase(cfg config.Config) (*gorm.DB, error) {
	db, err := config.NewDatabase(cfg.DatabaseDriver, cfg.DatabaseDSN, cfg.DBLogLevel)
	if err != nil {
		return nil, err
	}
	if err := config.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func closeDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("failed to close database: %v", err)
	}
}
