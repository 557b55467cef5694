package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportEventPayload is pushed to the notification queue whenever an engineer
// changes a report's state, and delivered by the webhook sender.
type ReportEventPayload struct {
	ReportID   uuid.UUID `json:"report_id"`
	Action     string    `json:"action"` // approved | rejected | resolved | unresolved
	EngineerID uuid.UUID `json:"engineer_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
