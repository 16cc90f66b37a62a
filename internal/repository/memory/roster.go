// Package memory implements the roster repository in process memory.
package memory

import (
	"context"
	"sync"

	"mergington-activities/internal/entities"

	"go.uber.org/zap"
)

// Roster keeps every activity in a map guarded by one store-wide lock.
type Roster struct {
	log *zap.SugaredLogger

	mu         sync.RWMutex
	activities map[string]*entities.Activity
	seed       []entities.Activity
}

// New creates a roster populated with copies of seed.
func New(log *zap.SugaredLogger, seed []entities.Activity) *Roster {
	r := &Roster{
		log:  log.Named("repo.memory"),
		seed: seed,
	}
	r.reset()
	return r
}

// OnStart resets the roster to the seed set.
func (r *Roster) OnStart(_ context.Context) error {
	r.reset()
	r.log.Infow("memory roster ready", "activities", len(r.seed))
	return nil
}

// OnStop is a no-op; state is dropped with the process.
func (r *Roster) OnStop(_ context.Context) error {
	return nil
}

func (r *Roster) reset() {
	activities := make(map[string]*entities.Activity, len(r.seed))
	for _, a := range r.seed {
		a := a.Clone()
		activities[a.Name] = &a
	}

	r.mu.Lock()
	r.activities = activities
	r.mu.Unlock()
}

// ListActivities returns a detached snapshot of all activities keyed by name.
func (r *Roster) ListActivities(ctx context.Context) (map[string]entities.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make(map[string]entities.Activity, len(r.activities))
	for name, a := range r.activities {
		res[name] = a.Clone()
	}
	return res, nil
}

// Activity returns a detached copy of one activity.
func (r *Roster) Activity(ctx context.Context, name string) (*entities.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, entities.ErrActivityNotFound
	}
	res := a.Clone()
	return &res, nil
}

// Enroll appends email to the activity roster.
func (r *Roster) Enroll(ctx context.Context, activityName, email string) (*entities.Activity, error) {
	return r.mutate(ctx, activityName, func(a *entities.Activity) error {
		return a.AddParticipant(email)
	})
}

// Unenroll removes email from the activity roster.
func (r *Roster) Unenroll(ctx context.Context, activityName, email string) (*entities.Activity, error) {
	return r.mutate(ctx, activityName, func(a *entities.Activity) error {
		return a.RemoveParticipant(email)
	})
}

// mutate runs fn under the write lock; fn must leave a unchanged when it fails.
func (r *Roster) mutate(ctx context.Context, name string, fn func(a *entities.Activity) error) (*entities.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, entities.ErrActivityNotFound
	}
	if err := fn(a); err != nil {
		return nil, err
	}
	res := a.Clone()
	return &res, nil
}
