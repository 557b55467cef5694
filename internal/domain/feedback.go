package domain

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackType string

const (
	FeedbackStatusUpdate       FeedbackType = "status_update"
	FeedbackLocationCorrection FeedbackType = "location_correction"
	FeedbackAdditionalInfo     FeedbackType = "additional_info"
	FeedbackGeneralComment     FeedbackType = "general_comment"
)

type FeedbackStatus string

const (
	FeedbackPending    FeedbackStatus = "pending"
	FeedbackReviewed   FeedbackStatus = "reviewed"
	FeedbackInProgress FeedbackStatus = "in_progress"
	FeedbackResolved   FeedbackStatus = "resolved"
)

// FeedbackReport is citizen feedback attached to a hazard report. It carries
// no coordinates of its own; coverage checks resolve against the parent
// report's location.
type FeedbackReport struct {
	ID              uuid.UUID      `json:"id"`
	ReportID        uuid.UUID      `json:"report_id"`
	Type            FeedbackType   `json:"feedback_type"`
	Message         string         `json:"message"`
	ReporterName    *string        `json:"reporter_name,omitempty"`
	ReporterContact *string        `json:"reporter_contact,omitempty"`
	Status          FeedbackStatus `json:"status"`
	ResponseNotes   *string        `json:"response_notes,omitempty"`
	RespondedBy     *uuid.UUID     `json:"responded_by,omitempty"`
	RespondedAt     *time.Time     `json:"responded_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}
