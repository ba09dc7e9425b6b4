package main

import (
	"context"
	"log"

	"github.com/01moynul/javashop-golang/internal/auth"
	"github.com/01moynul/javashop-golang/internal/config"
	"github.com/01moynul/javashop-golang/internal/database"
	"github.com/01moynul/javashop-golang/internal/handlers"
	"github.com/01moynul/javashop-golang/internal/routes"
	"github.com/01moynul/javashop-golang/internal/services"
	"github.com/gin-gonic/gin"
)

func main() {
	// 0. --- Load Configuration (.env + environment) ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	// 1. --- Database Connection ---
	db, err := database.OpenDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// 2. --- Schema & Sample Data ---
	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}
	if cfg.Database.Seed {
		if _, err := database.Seed(ctx, db); err != nil {
			log.Fatalf("Failed to seed products: %v", err)
		}
	}

	// --- Application Setup ---
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	app := &handlers.Handlers{
		AuthService:     services.NewAuthService(db, tokens),
		CatalogService:  services.NewCatalogService(db),
		CartService:     services.NewCartService(db),
		CheckoutService: services.NewCheckoutService(db),
		OrderService:    services.NewOrderService(db),
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app, tokens, cfg)

	// --- Start Server ---
	log.Printf("Starting JavaShop API server on %s...", cfg.Server.Addr())
	if err := router.Run(cfg.Server.Addr()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
