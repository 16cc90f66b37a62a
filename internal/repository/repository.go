// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"mergington-activities/config"
	"mergington-activities/internal/repository/memory"
	"mergington-activities/internal/repository/postgres"
	"mergington-activities/internal/seed"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	ActivityInterface
	RosterInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.BackendMemory:
		return memory.New(log, seed.Activities()), nil
	case config.BackendPostgres:
		return postgres.New(ctx, log, cfg, seed.Activities()), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
