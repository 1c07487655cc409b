package repository

import (
	"context"

	"festiva/internal/model"
	"festiva/internal/store"
)

// FeedbackRepository defines feedback persistence operations. Feedback is
// append-only; there is no delete path.
type FeedbackRepository interface {
	GetAll(ctx context.Context) []model.Feedback
	Upsert(ctx context.Context, feedback model.Feedback) error
}

type feedbackRepository struct {
	col *store.Collection[model.Feedback]
}

// NewFeedbackRepository creates a feedback repository over the feedback collection.
func NewFeedbackRepository(kv store.KV) FeedbackRepository {
	return &feedbackRepository{
		col: store.NewCollection(kv, store.KeyFeedback, func(f model.Feedback) string { return f.ID }),
	}
}

func (r *feedbackRepository) GetAll(ctx context.Context) []model.Feedback {
	return r.col.GetAll(ctx)
}

func (r *feedbackRepository) Upsert(ctx context.Context, feedback model.Feedback) error {
	return r.col.Upsert(ctx, feedback)
}
