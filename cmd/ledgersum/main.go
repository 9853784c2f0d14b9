package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/cleared-dev/ledgersum/internal/commands"
)

func main() {
	// Optional .env with LEDGERSUM_* settings.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
