package main

import (
	"github.com/joho/godotenv"

	"github.com/dverbeek/calltrack/cli"
	"github.com/dverbeek/calltrack/logging"
)

func main() {
	// Load environment variables from .env file, if present
	if err := godotenv.Load(); err != nil {
		logging.GetLogger().Debug("No .env file found, using environment")
	}

	cli.Execute()
}
