package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"festiva/internal/model"
)

// Fixed credentials of the bootstrap administrator account.
const (
	AdminEmail    = "admin@festiva.com"
	AdminPassword = "admin"
)

func seedAdmin() model.User {
	return model.User{
		ID:       "admin-1",
		Name:     "Festiva Admin",
		Email:    AdminEmail,
		Phone:    "0000000000",
		Role:     model.RoleAdmin,
		Password: AdminPassword,
	}
}

func seedVenues() []model.Venue {
	return []model.Venue{
		{
			ID:       "v1",
			Name:     "The Grand Marquee, Lahore",
			Location: "Gulberg III, Lahore",
			Capacity: 1000,
			Price:    decimal.NewFromInt(150000),
			ImageURL: "https://picsum.photos/seed/venue1/800/600",
		},
		{
			ID:       "v2",
			Name:     "Serena Emerald Hall",
			Location: "Islamabad",
			Capacity: 500,
			Price:    decimal.NewFromInt(250000),
			ImageURL: "https://picsum.photos/seed/venue2/800/600",
		},
		{
			ID:       "v3",
			Name:     "Beach Luxury Garden",
			Location: "Karachi",
			Capacity: 1500,
			Price:    decimal.NewFromInt(180000),
			ImageURL: "https://picsum.photos/seed/venue3/800/600",
		},
	}
}

func seedServices() []model.Service {
	return []model.Service{
		{
			ID:          "s1",
			Name:        "Marriage Ceremony",
			Description: "A complete package for your big day, including Nikah and Valima arrangements.",
			BasePrice:   decimal.NewFromInt(50000),
			Themes:      []string{"Royal Mughal", "Minimalist White", "Ethereal Forest", "Classic Gold"},
		},
		{
			ID:          "s2",
			Name:        "Birthday Party",
			Description: "Magical celebrations for all ages with vibrant decor and entertainment.",
			BasePrice:   decimal.NewFromInt(20000),
			Themes:      []string{"Superheroes", "Princess Palace", "Tropical Vibes", "Vintage Circus"},
		},
	}
}

// EnsureSeedData bootstraps the store. It appends the fixed admin user if no
// admin exists, and writes the built-in venue and service catalogs if their
// collections were never written. Safe to call on every start; existing
// collections are never overwritten.
func EnsureSeedData(ctx context.Context, kv KV) error {
	users := NewCollection(kv, KeyUsers, func(u model.User) string { return u.ID })
	hasAdmin := false
	for _, u := range users.GetAll(ctx) {
		if u.Role == model.RoleAdmin {
			hasAdmin = true
			break
		}
	}
	if !hasAdmin {
		if err := users.Upsert(ctx, seedAdmin()); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	venues := NewCollection(kv, KeyVenues, func(v model.Venue) string { return v.ID })
	if !venues.initialized(ctx) {
		for _, v := range seedVenues() {
			if err := venues.Upsert(ctx, v); err != nil {
				return fmt.Errorf("seed venues: %w", err)
			}
		}
	}

	services := NewCollection(kv, KeyServices, func(s model.Service) string { return s.ID })
	if !services.initialized(ctx) {
		for _, s := range seedServices() {
			if err := services.Upsert(ctx, s); err != nil {
				return fmt.Errorf("seed services: %w", err)
			}
		}
	}

	return nil
}
