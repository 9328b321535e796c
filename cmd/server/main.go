package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/tdejong/reversi/internal"
	"github.com/tdejong/reversi/internal/config"
)

func main() {
	// Load .env if present, the environment takes precedence
	_ = godotenv.Load()

	config.SetLogLevel()

	// Setup app
	app, cfg := internal.SetupApp()

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	log.Fatal(app.Listen(address))
}
