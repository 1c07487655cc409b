package model

import "github.com/shopspring/decimal"

// Venue is a bookable location administered through the admin catalog.
type Venue struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Location string          `json:"location"`
	Capacity int             `json:"capacity"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl"`
}

// Service is an event package (wedding, birthday, ...) with its base price
// and the themes offered for it.
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	Themes      []string        `json:"themes"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}

// CateringPackages are the catering options offered during booking.
var CateringPackages = []string{
	"Premium Pakistani (Mutton Karahi, Biryani, BBQ)",
	"Continental Fusion (Steaks, Pasta, Salads)",
	"Traditional Mughlai Feast",
	"Vegetarian Special",
}

// FoodPresentationStyles are the serving styles offered during booking.
var FoodPresentationStyles = []string{
	"Traditional Buffet",
	"Fine Dining Plated",
	"Live Cooking Stations",
	"Cocktail Style",
}
