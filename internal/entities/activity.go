// Package entities contains core business entities.
package entities

// Activity is a domain model of an extracurricular offering and its roster.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	// Participants holds emails in signup order.
	Participants []string
}

// Clone returns a copy that shares no memory with a.
func (a Activity) Clone() Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	a.Participants = participants
	return a
}

// HasParticipant reports whether email is on the roster.
func (a Activity) HasParticipant(email string) bool {
	return a.participantIndex(email) >= 0
}

// AddParticipant appends email to the end of the roster.
func (a *Activity) AddParticipant(email string) error {
	if a.HasParticipant(email) {
		return ErrAlreadyEnrolled
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// RemoveParticipant drops email keeping the order of the others.
func (a *Activity) RemoveParticipant(email string) error {
	idx := a.participantIndex(email)
	if idx < 0 {
		return ErrParticipantNotFound
	}
	a.Participants = append(a.Participants[:idx], a.Participants[idx+1:]...)
	return nil
}

func (a Activity) participantIndex(email string) int {
	for i, p := range a.Participants {
		if p == email {
			return i
		}
	}
	return -1
}
