package main

import (
	"log"

	_ "atelier_backend/docs"
	"atelier_backend/internal/adapter/http/routes"
	"atelier_backend/internal/config"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// @title           Atelier Backend API
// @version         1.0
// @description     Repair shop and storefront backend (orders, repairs, quotes, payments).

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if err := routes.Run(cfg, logger); err != nil {
		logger.WithError(err).Fatal("Failed to startup the application")
	}
}
