// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"mergington-activities/internal/api"
	"mergington-activities/internal/entities"
)

// ToAPIActivity maps entities.Activity to transport model. Participants is never null on the wire.
func ToAPIActivity(a entities.Activity) api.Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)

	return api.Activity{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}

// ToAPIActivities maps a name-keyed set of activities to transport model.
func ToAPIActivities(src map[string]entities.Activity) api.Activities {
	res := make(api.Activities, len(src))
	for name, a := range src {
		res[name] = ToAPIActivity(a)
	}
	return res
}
