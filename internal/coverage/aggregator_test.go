package coverage_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/Rjayskie12/hazards-sub000/internal/coverage"
	"github.com/Rjayskie12/hazards-sub000/internal/domain"
)

func TestBandForCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n        int
		wantBand domain.WorkloadBand
		wantWarn bool
	}{
		{0, domain.WorkloadLow, false},
		{10, domain.WorkloadLow, false},
		{11, domain.WorkloadMedium, false},
		{15, domain.WorkloadMedium, false},
		// The warning threshold (>15) fires before the high band (>20).
		{16, domain.WorkloadMedium, true},
		{20, domain.WorkloadMedium, true},
		{21, domain.WorkloadHigh, true},
	}

	for _, c := range cases {
		if got := coverage.BandForCount(c.n); got != c.wantBand {
			t.Fatalf("BandForCount(%d) = %s, want %s", c.n, got, c.wantBand)
		}
		if got := coverage.HighWorkloadWarning(c.n); got != c.wantWarn {
			t.Fatalf("HighWorkloadWarning(%d) = %v, want %v", c.n, got, c.wantWarn)
		}
	}
}

func TestAggregate_CountsAndBreakdowns(t *testing.T) {
	t.Parallel()

	home := coord(14.5995, 120.9842)
	active := activeEngineer("A. Cruz", home, 5000)
	inactive := activeEngineer("B. Reyes", home, 5000)
	inactive.Status = domain.EngineerInactive

	located := locatedReport(coord(14.6095, 120.9842))
	located.Severity = domain.SeverityCritical
	farAway := locatedReport(coord(15.5995, 120.9842)) // far outside 40 km
	farAway.Status = domain.ReportApproved
	unlocated := domain.HazardReport{
		ID:       uuid.New(),
		Severity: domain.SeverityMinor,
		Status:   domain.ReportRejected,
	}

	engineers := []domain.Engineer{active, inactive}
	reports := []domain.HazardReport{located, farAway, unlocated}
	matches := coverage.MatchAdmin(engineers, reports)

	stats := coverage.Aggregate(engineers, reports, matches)

	// Totals and breakdowns span every report, located or not.
	if stats.TotalReports != 3 {
		t.Fatalf("TotalReports = %d, want 3", stats.TotalReports)
	}
	if stats.ReportsByStatus[domain.ReportPending] != 1 ||
		stats.ReportsByStatus[domain.ReportApproved] != 1 ||
		stats.ReportsByStatus[domain.ReportRejected] != 1 {
		t.Fatalf("status breakdown wrong: %+v", stats.ReportsByStatus)
	}
	if stats.ReportsBySeverity[domain.SeverityCritical] != 1 ||
		stats.ReportsBySeverity[domain.SeverityMinor] != 1 {
		t.Fatalf("severity breakdown wrong: %+v", stats.ReportsBySeverity)
	}

	// The covered/uncovered split counts located reports only.
	if stats.CoveredReports != 1 || stats.UncoveredReports != 1 {
		t.Fatalf("coverage split = %d/%d, want 1/1", stats.CoveredReports, stats.UncoveredReports)
	}
	if stats.CoveredReports+stats.UncoveredReports != len(matches) {
		t.Fatalf("split must sum to the number of located reports")
	}

	if stats.TotalEngineers != 2 || stats.ActiveEngineers != 1 || stats.InactiveEngineers != 1 {
		t.Fatalf("engineer counts wrong: %+v", stats)
	}
}

func TestAggregate_WorkloadKeepsEngineerOrder(t *testing.T) {
	t.Parallel()

	home := coord(14.5995, 120.9842)
	e1 := activeEngineer("First", home, 5000)
	e2 := activeEngineer("Second", home, 5000)
	inactive := activeEngineer("Inactive", home, 5000)
	inactive.Status = domain.EngineerInactive

	rep := locatedReport(coord(14.6095, 120.9842))

	engineers := []domain.Engineer{e1, inactive, e2}
	reports := []domain.HazardReport{rep}
	matches := coverage.MatchAdmin(engineers, reports)

	stats := coverage.Aggregate(engineers, reports, matches)
	if len(stats.Workload) != 3 {
		t.Fatalf("workload must list every engineer, got %d", len(stats.Workload))
	}
	for i, want := range []uuid.UUID{e1.ID, inactive.ID, e2.ID} {
		if stats.Workload[i].EngineerID != want {
			t.Fatalf("workload entry %d out of input order", i)
		}
	}
	// Inactive engineers appear with a zero count, never matched.
	if stats.Workload[1].ReportCount != 0 {
		t.Fatalf("inactive engineer should have zero workload, got %d", stats.Workload[1].ReportCount)
	}
	if stats.Workload[0].ReportCount != 1 || stats.Workload[2].ReportCount != 1 {
		t.Fatalf("active engineers should each count the covered report")
	}
	if stats.Workload[0].Band != domain.WorkloadLow || stats.Workload[0].HighWorkload {
		t.Fatalf("one report must be a low band without a warning")
	}
}

func TestAggregate_TopPerformersTruncatedAndStable(t *testing.T) {
	t.Parallel()

	home := coord(14.5995, 120.9842)
	// Seven engineers; the last one is out of range of every report.
	engineers := make([]domain.Engineer, 0, 7)
	for _, name := range []string{"E1", "E2", "E3", "E4", "E5", "E6"} {
		engineers = append(engineers, activeEngineer(name, home, 5000))
	}
	engineers = append(engineers, activeEngineer("E7", coord(-14.5995, -120.9842), 5000))

	reports := []domain.HazardReport{
		locatedReport(coord(14.6095, 120.9842)),
		locatedReport(coord(14.6195, 120.9842)),
	}
	matches := coverage.MatchAdmin(engineers, reports)

	stats := coverage.Aggregate(engineers, reports, matches)
	if len(stats.TopPerformers) != 5 {
		t.Fatalf("top performers must be capped at 5, got %d", len(stats.TopPerformers))
	}
	// All six in-range engineers tie on two reports each; the stable sort
	// keeps them in engineer input order, so the cap drops E6 and E7.
	for i, want := range []string{"E1", "E2", "E3", "E4", "E5"} {
		if stats.TopPerformers[i].FullName != want {
			t.Fatalf("top performer %d = %s, want %s", i, stats.TopPerformers[i].FullName, want)
		}
	}
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	stats := coverage.Aggregate(nil, nil, nil)
	if stats.TotalReports != 0 || stats.TotalEngineers != 0 {
		t.Fatalf("empty inputs must produce zero totals: %+v", stats)
	}
	if stats.Workload == nil || len(stats.Workload) != 0 {
		t.Fatalf("workload must be an empty slice, got %#v", stats.Workload)
	}
}
