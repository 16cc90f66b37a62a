package postgres

import (
	"context"
	"errors"
	"fmt"

	"mergington-activities/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const (
	truncateQuery       = "TRUNCATE participants, activities RESTART IDENTITY"
	insertActivityQuery = `
INSERT INTO activities(name, description, schedule, max_participants)
VALUES ($1, $2, $3, $4)`
	insertParticipantQuery = "INSERT INTO participants(activity_name, email) VALUES ($1, $2)"
	deleteParticipantQuery = "DELETE FROM participants WHERE activity_name=$1 AND email=$2"
	lockActivityQuery      = "SELECT name FROM activities WHERE name=$1 FOR UPDATE"
	selectActivitiesQuery  = `
SELECT a.name, a.description, a.schedule, a.max_participants,
       COALESCE(array_agg(p.email ORDER BY p.id) FILTER (WHERE p.email IS NOT NULL), '{}')
FROM activities a
LEFT JOIN participants p ON p.activity_name = a.name
GROUP BY a.name`
	selectActivityQuery = `
SELECT a.name, a.description, a.schedule, a.max_participants,
       COALESCE(array_agg(p.email ORDER BY p.id) FILTER (WHERE p.email IS NOT NULL), '{}')
FROM activities a
LEFT JOIN participants p ON p.activity_name = a.name
WHERE a.name = $1
GROUP BY a.name`
)

// querier is satisfied by both the pool and a transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// reseed replaces all roster rows with the seed set in one transaction.
func (p *Postgres) reseed(ctx context.Context) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin reseed: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, truncateQuery); err != nil {
		return fmt.Errorf("truncate roster: %w", err)
	}

	batch := &pgx.Batch{}
	for _, a := range p.seed {
		batch.Queue(insertActivityQuery, a.Name, a.Description, a.Schedule, a.MaxParticipants)
		for _, email := range a.Participants {
			batch.Queue(insertParticipantQuery, a.Name, email)
		}
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert seed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit reseed: %w", err)
	}
	return nil
}

// ListActivities returns every activity with its roster in signup order.
func (p *Postgres) ListActivities(ctx context.Context) (map[string]entities.Activity, error) {
	rows, err := p.db.Query(ctx, selectActivitiesQuery)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	res := make(map[string]entities.Activity)
	for rows.Next() {
		var a entities.Activity
		if err := rows.Scan(&a.Name, &a.Description, &a.Schedule, &a.MaxParticipants, &a.Participants); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		res[a.Name] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return res, nil
}

// Activity fetches one activity by name.
func (p *Postgres) Activity(ctx context.Context, name string) (*entities.Activity, error) {
	return getActivity(ctx, p.db, name)
}

// Enroll appends email to the roster while holding the activity row lock.
func (p *Postgres) Enroll(ctx context.Context, activityName, email string) (*entities.Activity, error) {
	return p.inActivityTx(ctx, activityName, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertParticipantQuery, activityName, email); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return entities.ErrAlreadyEnrolled
			}
			return fmt.Errorf("insert participant: %w", err)
		}
		return nil
	})
}

// Unenroll removes email from the roster while holding the activity row lock.
func (p *Postgres) Unenroll(ctx context.Context, activityName, email string) (*entities.Activity, error) {
	return p.inActivityTx(ctx, activityName, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, deleteParticipantQuery, activityName, email)
		if err != nil {
			return fmt.Errorf("delete participant: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return entities.ErrParticipantNotFound
		}
		return nil
	})
}

// inActivityTx locks the activity row, runs fn and returns the committed state.
func (p *Postgres) inActivityTx(ctx context.Context, name string, fn func(tx pgx.Tx) error) (*entities.Activity, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var locked string
	if err := tx.QueryRow(ctx, lockActivityQuery, name).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrActivityNotFound
		}
		return nil, fmt.Errorf("lock activity: %w", err)
	}

	if err := fn(tx); err != nil {
		return nil, err
	}

	a, err := getActivity(ctx, tx, name)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit roster change: %w", err)
	}
	return a, nil
}

func getActivity(ctx context.Context, q querier, name string) (*entities.Activity, error) {
	var a entities.Activity
	err := q.QueryRow(ctx, selectActivityQuery, name).
		Scan(&a.Name, &a.Description, &a.Schedule, &a.MaxParticipants, &a.Participants)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrActivityNotFound
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return &a, nil
}
