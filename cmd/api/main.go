package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "studio_booking/docs"
	"studio_booking/internal/adapter/http/routes"
	"studio_booking/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Studio Booking API
// @version         1.0
// @description     Studio booking with partner hour quotas and hosted-checkout settlement.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the cron secret.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := routes.Run(ctx, cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
