package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "festiva/internal/errors"
	"festiva/internal/model"
	"festiva/internal/repository"
)

// FeedbackInput carries a new feedback submission.
type FeedbackInput struct {
	ClientID   string
	ClientName string
	Rating     int
	Comment    string
}

// FeedbackService records client feedback. Entries are immutable and never
// deleted.
type FeedbackService interface {
	Submit(ctx context.Context, input FeedbackInput) (model.Feedback, error)
	List(ctx context.Context) []model.Feedback
}

type feedbackService struct {
	feedback repository.FeedbackRepository
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(feedback repository.FeedbackRepository) FeedbackService {
	return &feedbackService{feedback: feedback}
}

// Submit stores a rating between 1 and 5 with a non-empty comment.
func (s *feedbackService) Submit(ctx context.Context, input FeedbackInput) (model.Feedback, error) {
	if input.Comment == "" || input.Rating < 1 || input.Rating > 5 {
		return model.Feedback{}, apperrors.ErrMissingFields
	}
	entry := model.Feedback{
		ID:         uuid.NewString(),
		ClientID:   input.ClientID,
		ClientName: input.ClientName,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.feedback.Upsert(ctx, entry); err != nil {
		return model.Feedback{}, fmt.Errorf("save feedback: %w", err)
	}
	return entry, nil
}

func (s *feedbackService) List(ctx context.Context) []model.Feedback {
	return s.feedback.GetAll(ctx)
}
