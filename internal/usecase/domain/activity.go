// Package domain contains application Usecases orchestrating roster logic.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mergington-activities/internal/entities"
	"mergington-activities/internal/events"
	"mergington-activities/internal/observability"
)

const (
	opSignUp     = "signup"
	opUnregister = "unregister"
)

// ListActivities returns every activity keyed by name.
func (u *Usecase) ListActivities(ctx context.Context) (map[string]entities.Activity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	activities, err := u.repo.ListActivities(ctx)
	if err != nil {
		u.log.Errorw("failed to list activities", "error", err)
		return nil, err
	}
	return activities, nil
}

// SignUp adds email to the roster of activityName.
func (u *Usecase) SignUp(ctx context.Context, activityName, email string) (*entities.Activity, error) {
	return u.changeRoster(ctx, opSignUp, events.TypeParticipantEnrolled, activityName, email, u.repo.Enroll)
}

// Unregister removes email from the roster of activityName.
func (u *Usecase) Unregister(ctx context.Context, activityName, email string) (*entities.Activity, error) {
	return u.changeRoster(ctx, opUnregister, events.TypeParticipantUnenrolled, activityName, email, u.repo.Unenroll)
}

type rosterChange func(ctx context.Context, activityName, email string) (*entities.Activity, error)

func (u *Usecase) changeRoster(
	ctx context.Context,
	op, eventType, activityName, email string,
	change rosterChange,
) (*entities.Activity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	email = strings.TrimSpace(email)

	a, err := u.applyChange(ctx, activityName, email, change)
	observability.RecordRosterOperation(op, outcome(err))
	if err != nil {
		u.log.Infow("roster change rejected", "op", op, "activity", activityName, "email", email, "error", err)
		return nil, err
	}

	u.log.Infow("roster changed", "op", op, "activity", activityName, "email", email, "participants", len(a.Participants))
	u.publish(ctx, events.NewRosterEvent(eventType, activityName, email))
	return a, nil
}

func (u *Usecase) applyChange(ctx context.Context, activityName, email string, change rosterChange) (*entities.Activity, error) {
	if activityName == "" {
		return nil, entities.ErrActivityNotFound
	}
	if !validEmail(email) {
		// Unknown activities report NotFound whatever the email looks like.
		if _, err := u.repo.Activity(ctx, activityName); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: email must look like name@domain", entities.ErrInvalidArgument)
	}
	return change(ctx, activityName, email)
}

// publish never fails the request: the roster change is already committed.
func (u *Usecase) publish(ctx context.Context, evt events.RosterEvent) {
	if err := u.publisher.Publish(ctx, evt); err != nil {
		observability.RecordEventPublishFailure()
		u.log.Warnw("failed to publish roster event", "type", evt.Type, "activity", evt.Activity, "error", err)
	}
}

func validEmail(email string) bool {
	if email == "" || strings.ContainsAny(email, " \t\r\n") {
		return false
	}
	local, domain, ok := strings.Cut(email, "@")
	return ok && local != "" && domain != "" && !strings.Contains(domain, "@")
}

func outcome(err error) string {
	switch {
	case err == nil:
		return observability.OutcomeSuccess
	case errors.Is(err, entities.ErrActivityNotFound), errors.Is(err, entities.ErrParticipantNotFound):
		return observability.OutcomeNotFound
	case errors.Is(err, entities.ErrAlreadyEnrolled):
		return observability.OutcomeConflict
	case errors.Is(err, entities.ErrInvalidArgument):
		return observability.OutcomeInvalid
	default:
		return observability.OutcomeError
	}
}
