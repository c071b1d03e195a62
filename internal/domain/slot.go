package domain

// EventSlot is a bookable window owned by the upstream API.
// AvailableParticipants is the server-computed remaining capacity.
type EventSlot struct {
	ID                    int64  `json:"id"`
	EventID               int64  `json:"event_id"`
	Date                  string `json:"date"`
	StartTime             string `json:"start_time"`
	EndTime               string `json:"end_time"`
	UnlimitedParticipants bool   `json:"unlimited_participants"`
	MaxParticipants       int    `json:"max_participants"`
	AvailableParticipants int    `json:"available_participants"`
}

// CanAccommodate reports whether a team of n may bind to this slot.
func (s EventSlot) CanAccommodate(n int) bool {
	return s.UnlimitedParticipants || s.AvailableParticipants >= n
}
