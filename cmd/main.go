// Package main is the entry point for the rate-service application.
//
// @title           Freight Rate Service API
// @version         1.0.0
// @description     API for estimating freight quotes from partial, often free-text shipment parameters.
//
//	The service resolves a delivery mode, fills in missing inputs via extraction heuristics and
//	external distance lookups, and prices the shipment through a layered breakdown.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/swifthaul/rate-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Quotes
// @tag.description Freight quote estimation operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/swifthaul/rate-service/docs" // swagger docs

	"github.com/rs/zerolog/log"
	"github.com/swifthaul/rate-service/config"
	"github.com/swifthaul/rate-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
