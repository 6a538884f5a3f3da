package repo

import (
	"context"

	"github.com/momeni/rental-console/pkg/core/model"
)

type FeedbackLog interface {
	// Submit appends a feedback entry unconditionally.
	Submit(ctx context.Context, f model.Feedback) error
	// All returns the submitted feedback entries in insertion order.
	All(ctx context.Context) ([]model.Feedback, error)
}
