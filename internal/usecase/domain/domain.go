package domain

import (
	"context"
	"time"

	"mergington-activities/internal/events"
	"mergington-activities/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	log       *zap.SugaredLogger
	repo      repository.Repository
	publisher events.Publisher
	timeout   time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	publisher events.Publisher,
	timeout time.Duration,
) *Usecase {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Usecase{
		log:       log.Named("usecase"),
		repo:      repo,
		publisher: publisher,
		timeout:   timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
