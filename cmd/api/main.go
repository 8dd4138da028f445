package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"reforma_xpto/internal/adapter/http/routes"
	"reforma_xpto/internal/infrastructure/config"
	"reforma_xpto/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Reforma XPTO Back-office API
// @version         1.0
// @description     Leads, visits, budgets, service orders and the financial ledger of a renovation business.

// @host localhost:8080

// @BasePath  /v1

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	if err := routes.Run(ctx, cfg); err != nil {
		logging.Default().Fatalf("Failed to startup the application: %v", err)
	}
}
