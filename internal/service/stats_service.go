package service

import (
	"context"

	"github.com/shopspring/decimal"

	"festiva/internal/model"
	"festiva/internal/repository"
)

// Stats is the admin dashboard headline figures.
type Stats struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalOrders   int             `json:"totalOrders"`
	AverageRating float64         `json:"averageRating"`
	FeedbackCount int             `json:"feedbackCount"`
	VenueCount    int             `json:"venueCount"`
	ClientCount   int             `json:"clientCount"`
}

// StatsService aggregates analytics for the admin dashboard.
type StatsService interface {
	Stats(ctx context.Context) Stats
}

type statsService struct {
	orders   repository.OrderRepository
	feedback repository.FeedbackRepository
	venues   repository.VenueRepository
	users    repository.UserRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(
	orders repository.OrderRepository,
	feedback repository.FeedbackRepository,
	venues repository.VenueRepository,
	users repository.UserRepository,
) StatsService {
	return &statsService{orders: orders, feedback: feedback, venues: venues, users: users}
}

// Stats computes the dashboard figures. Revenue counts Confirmed and
// Completed orders only; Pending and Cancelled bookings do not earn.
func (s *statsService) Stats(ctx context.Context) Stats {
	stats := Stats{TotalRevenue: decimal.Zero}

	for _, o := range s.orders.GetAll(ctx) {
		stats.TotalOrders++
		if o.Status == model.StatusConfirmed || o.Status == model.StatusCompleted {
			stats.TotalRevenue = stats.TotalRevenue.Add(o.TotalAmount)
		}
	}

	ratingSum := 0
	for _, f := range s.feedback.GetAll(ctx) {
		stats.FeedbackCount++
		ratingSum += f.Rating
	}
	if stats.FeedbackCount > 0 {
		stats.AverageRating = float64(ratingSum) / float64(stats.FeedbackCount)
	}

	stats.VenueCount = len(s.venues.GetAll(ctx))
	for _, u := range s.users.GetAll(ctx) {
		if u.Role == model.RoleClient {
			stats.ClientCount++
		}
	}
	return stats
}
