package main

import (
	"context"
	"log"
	"net/http"

	_ "festiva/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"festiva/internal/auth"
	"festiva/internal/config"
	"festiva/internal/handler"
	"festiva/internal/repository"
	"festiva/internal/router"
	"festiva/internal/service"
	"festiva/internal/store"
	"festiva/internal/suggest"
)

// @title Festiva Events API
// @version 1.0
// @description Event booking API: client bookings, admin catalog and order management, theme suggestions.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	var kv store.KV
	switch cfg.StoreBackend {
	case "memory":
		log.Println("using in-memory store, records will not survive a restart")
		kv = store.NewMemory()
	default:
		kv = store.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}

	if err := store.EnsureSeedData(context.Background(), kv); err != nil {
		log.Fatalf("seed store: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(kv)
	orderRepo := repository.NewOrderRepository(kv)
	venueRepo := repository.NewVenueRepository(kv)
	serviceRepo := repository.NewServiceRepository(kv)
	feedbackRepo := repository.NewFeedbackRepository(kv)

	sessions := auth.NewSessionStore(kv)
	suggestClient := suggest.NewClient(cfg.SuggestURL, cfg.SuggestModel, cfg.SuggestKey)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessions)
	catalogService := service.NewCatalogService(venueRepo, serviceRepo)
	orderService := service.NewOrderService(orderRepo)
	bookingService := service.NewBookingService(orderRepo, venueRepo, serviceRepo, userRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo)
	statsService := service.NewStatsService(orderRepo, feedbackRepo, venueRepo, userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	orderHandler := handler.NewOrderHandler(bookingService, orderService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	suggestHandler := handler.NewSuggestHandler(suggestClient)
	adminHandler := handler.NewAdminHandler(statsService, userRepo)

	// Register routes
	router.Register(
		e,
		sessions,
		authHandler,
		catalogHandler,
		orderHandler,
		feedbackHandler,
		suggestHandler,
		adminHandler,
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "http://localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
