package coverage

import (
	"sort"

	"github.com/Rjayskie12/hazards-sub000/internal/domain"
)

const topPerformerLimit = 5

// BandForCount maps an engineer's report count to a workload band.
func BandForCount(n int) domain.WorkloadBand {
	switch {
	case n > 20:
		return domain.WorkloadHigh
	case n > 10:
		return domain.WorkloadMedium
	default:
		return domain.WorkloadLow
	}
}

// HighWorkloadWarning is a second, independent threshold used only for the
// warning label. It deliberately disagrees with BandForCount (>15 vs >20);
// both contracts are kept as-is rather than unified.
func HighWorkloadWarning(n int) bool {
	return n > 15
}

// Aggregate computes the dashboard statistics from the full engineer and
// report snapshots plus admin-mode matching output. Total report counts and
// the status/severity breakdowns include unlocated reports; the
// covered/uncovered split only ever counts located ones, so
// covered + uncovered equals the number of entries in matches.
func Aggregate(engineers []domain.Engineer, reports []domain.HazardReport, matches []domain.ReportCoverage) domain.CoverageStats {
	stats := domain.CoverageStats{
		TotalReports:      len(reports),
		ReportsByStatus:   make(map[domain.ReportStatus]int),
		ReportsBySeverity: make(map[domain.Severity]int),
		TotalEngineers:    len(engineers),
	}

	for _, r := range reports {
		stats.ReportsByStatus[r.Status]++
		stats.ReportsBySeverity[r.Severity]++
	}

	for _, e := range engineers {
		if e.Status == domain.EngineerActive {
			stats.ActiveEngineers++
		} else {
			stats.InactiveEngineers++
		}
	}

	counts := make(map[string]int)
	for _, m := range matches {
		if m.CoverageStatus == domain.Covered {
			stats.CoveredReports++
		} else {
			stats.UncoveredReports++
		}
		for _, a := range m.Assigned {
			counts[a.EngineerID.String()]++
		}
	}

	// Workload keeps the engineer input order; inactive or unlocated
	// engineers simply show zero.
	stats.Workload = make([]domain.EngineerWorkload, 0, len(engineers))
	for _, e := range engineers {
		n := counts[e.ID.String()]
		stats.Workload = append(stats.Workload, domain.EngineerWorkload{
			EngineerID:   e.ID,
			FullName:     e.FullName,
			ReportCount:  n,
			Band:         BandForCount(n),
			HighWorkload: HighWorkloadWarning(n),
		})
	}

	top := make([]domain.EngineerWorkload, len(stats.Workload))
	copy(top, stats.Workload)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].ReportCount > top[j].ReportCount
	})
	if len(top) > topPerformerLimit {
		top = top[:topPerformerLimit]
	}
	stats.TopPerformers = top

	return stats
}
