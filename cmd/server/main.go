package main

import (
	"context"
	"fmt"
	"log"

	"anexos/internal/config"
	"anexos/internal/handler"
	"anexos/internal/router"
	"anexos/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize services
	authSvc := service.NewAuthService(cfg.Access, cfg.JWT)
	sessionSvc := service.NewSessionService(cfg.Session)
	sessionSvc.StartSweeper(context.Background())

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	wizardH := handler.NewWizardHandler(sessionSvc)
	documentH := handler.NewDocumentHandler(sessionSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, authSvc, authH, wizardH, documentH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
