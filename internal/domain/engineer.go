package domain

import (
	"time"

	"github.com/google/uuid"
)

type EngineerStatus string

const (
	EngineerActive   EngineerStatus = "active"
	EngineerInactive EngineerStatus = "inactive"
)

// DefaultCoverageRadiusMeters is applied when an administrator creates an
// engineer without an explicit radius. The admin UI constrains the value to
// [1000, 50000]; the engine itself tolerates any positive radius.
const DefaultCoverageRadiusMeters = 5000

type Engineer struct {
	ID                   uuid.UUID      `json:"id"`
	FullName             string         `json:"full_name"`
	Email                string         `json:"email"`
	Phone                string         `json:"phone,omitempty"`
	Specialization       string         `json:"specialization,omitempty"`
	Status               EngineerStatus `json:"status"`
	Home                 *Coordinate    `json:"home,omitempty"`
	CoverageRadiusMeters int            `json:"coverage_radius_meters"`
	CreatedAt            time.Time      `json:"created_at"`
}
