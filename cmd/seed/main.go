package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"festiva/internal/config"
	"festiva/internal/repository"
	"festiva/internal/store"
)

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.StoreBackend == "memory" {
		log.Fatal("seeding a memory store is pointless, it dies with this process")
	}

	kv := store.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	ctx := context.Background()

	if err := kv.Ping(ctx); err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	log.Println("Connected to redis")

	if err := store.EnsureSeedData(ctx, kv); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	users := repository.NewUserRepository(kv)
	venues := repository.NewVenueRepository(kv)
	services := repository.NewServiceRepository(kv)

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users: %d", len(users.GetAll(ctx)))
	log.Printf("  - Venues: %d", len(venues.GetAll(ctx)))
	log.Printf("  - Services: %d", len(services.GetAll(ctx)))
}
