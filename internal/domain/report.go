package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportApproved ReportStatus = "approved"
	ReportRejected ReportStatus = "rejected"
)

type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// HazardReport is a citizen-submitted road hazard. Status and the resolved
// flag are independent axes: a report moves pending -> approved|rejected
// exactly once, while resolved can toggle both ways (resolving requires the
// report to be approved first).
type HazardReport struct {
	ID              uuid.UUID    `json:"id"`
	HazardType      string       `json:"hazard_type"`
	Severity        Severity     `json:"severity"`
	Location        *Coordinate  `json:"location,omitempty"`
	Address         string       `json:"address,omitempty"`
	Description     string       `json:"description,omitempty"`
	ImageURL        *string      `json:"image_url,omitempty"`
	Status          ReportStatus `json:"status"`
	Resolved        bool         `json:"resolved"`
	ApprovedBy      *uuid.UUID   `json:"approved_by,omitempty"`
	ResolvedBy      *uuid.UUID   `json:"resolved_by,omitempty"`
	RejectionReason *string      `json:"rejection_reason,omitempty"`
	ResolutionNotes *string      `json:"resolution_notes,omitempty"`
	ReportedAt      time.Time    `json:"reported_at"`
	ApprovedAt      *time.Time   `json:"approved_at,omitempty"`
	ResolvedAt      *time.Time   `json:"resolved_at,omitempty"`
}
