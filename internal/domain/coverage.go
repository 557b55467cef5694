package domain

import "github.com/google/uuid"

type CoverageStatus string

const (
	Covered   CoverageStatus = "covered"
	Uncovered CoverageStatus = "uncovered"
)

// AssignedEngineer is one engineer able to handle a report, with the
// great-circle distance from their home coordinate to the report.
type AssignedEngineer struct {
	EngineerID     uuid.UUID `json:"engineer_id"`
	FullName       string    `json:"full_name"`
	Specialization string    `json:"specialization,omitempty"`
	DistanceMeters float64   `json:"distance_meters"`
}

// ReportCoverage is the admin-view assignment for a single report:
// every active, located engineer whose circle (at the fixed admin radius)
// contains the report, nearest first.
type ReportCoverage struct {
	Report         HazardReport       `json:"report"`
	Assigned       []AssignedEngineer `json:"assigned_engineers"`
	CoverageStatus CoverageStatus     `json:"coverage_status"`
}

// RankedReport is a report inside one engineer's own coverage circle.
type RankedReport struct {
	Report         HazardReport `json:"report"`
	DistanceMeters float64      `json:"distance_meters"`
}

type WorkloadBand string

const (
	WorkloadHigh   WorkloadBand = "high"
	WorkloadMedium WorkloadBand = "medium"
	WorkloadLow    WorkloadBand = "low"
)

type EngineerWorkload struct {
	EngineerID   uuid.UUID    `json:"engineer_id"`
	FullName     string       `json:"full_name"`
	ReportCount  int          `json:"report_count"`
	Band         WorkloadBand `json:"band"`
	HighWorkload bool         `json:"high_workload"`
}

// CoverageStats is the dashboard aggregate derived from admin-mode matching.
type CoverageStats struct {
	TotalReports      int                  `json:"total_reports"`
	CoveredReports    int                  `json:"covered_reports"`
	UncoveredReports  int                  `json:"uncovered_reports"`
	ReportsByStatus   map[ReportStatus]int `json:"reports_by_status"`
	ReportsBySeverity map[Severity]int     `json:"reports_by_severity"`
	TotalEngineers    int                  `json:"total_engineers"`
	ActiveEngineers   int                  `json:"active_engineers"`
	InactiveEngineers int                  `json:"inactive_engineers"`
	Workload          []EngineerWorkload   `json:"workload"`
	TopPerformers     []EngineerWorkload   `json:"top_performers"`
}
