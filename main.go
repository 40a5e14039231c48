package main

import "task-management-system.com/task-management-system/cmd"

func main() {
	cmd.Execute()
}
