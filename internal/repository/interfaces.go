// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"mergington-activities/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ActivityInterface exposes read access to activities.
type ActivityInterface interface {
	ListActivities(ctx context.Context) (map[string]entities.Activity, error)
	Activity(ctx context.Context, name string) (*entities.Activity, error)
}

// RosterInterface exposes roster mutations. Each call checks and mutates atomically.
type RosterInterface interface {
	Enroll(ctx context.Context, activityName, email string) (*entities.Activity, error)
	Unenroll(ctx context.Context, activityName, email string) (*entities.Activity, error)
}
