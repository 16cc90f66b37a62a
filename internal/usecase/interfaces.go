package usecase

import (
	"context"

	"mergington-activities/internal/entities"
)

// ActivityUsecaseInterface abstracts activity directory and roster operations for delivery layer.
type ActivityUsecaseInterface interface {
	ListActivities(ctx context.Context) (map[string]entities.Activity, error)
	SignUp(ctx context.Context, activityName, email string) (*entities.Activity, error)
	Unregister(ctx context.Context, activityName, email string) (*entities.Activity, error)
}
