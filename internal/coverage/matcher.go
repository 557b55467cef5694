package coverage

import (
	"sort"
	"strings"

	"github.com/Rjayskie12/hazards-sub000/internal/domain"
)

// MatchAdmin computes the admin-view assignment: for every located report,
// all active located engineers within the fixed AdminRadiusMeters, nearest
// first (ties broken by engineer id ascending for determinism). Unlocated
// reports are omitted entirely — they are neither covered nor uncovered.
// Results keep the input report order. O(engineers x reports), recomputed on
// every call.
func MatchAdmin(engineers []domain.Engineer, reports []domain.HazardReport) []domain.ReportCoverage {
	out := make([]domain.ReportCoverage, 0, len(reports))

	for _, r := range reports {
		if r.Location == nil {
			continue
		}

		var assigned []domain.AssignedEngineer
		for _, e := range engineers {
			if e.Status != domain.EngineerActive || e.Home == nil {
				continue
			}
			d := Distance(*e.Home, *r.Location)
			if d <= AdminRadiusMeters {
				assigned = append(assigned, domain.AssignedEngineer{
					EngineerID:     e.ID,
					FullName:       e.FullName,
					Specialization: e.Specialization,
					DistanceMeters: d,
				})
			}
		}

		sort.SliceStable(assigned, func(i, j int) bool {
			if assigned[i].DistanceMeters != assigned[j].DistanceMeters {
				return assigned[i].DistanceMeters < assigned[j].DistanceMeters
			}
			return strings.Compare(assigned[i].EngineerID.String(), assigned[j].EngineerID.String()) < 0
		})

		status := domain.Uncovered
		if len(assigned) > 0 {
			status = domain.Covered
		}

		out = append(out, domain.ReportCoverage{
			Report:         r,
			Assigned:       assigned,
			CoverageStatus: status,
		})
	}

	return out
}

// MatchEngineer computes one engineer's own view: located reports inside
// their configured coverage radius, nearest first, ties by report id
// ascending. Empty when the engineer is inactive or has no home coordinate.
func MatchEngineer(e domain.Engineer, reports []domain.HazardReport) []domain.RankedReport {
	if e.Status != domain.EngineerActive || e.Home == nil {
		return nil
	}

	var out []domain.RankedReport
	for _, r := range reports {
		if r.Location == nil {
			continue
		}
		d := Distance(*e.Home, *r.Location)
		if d <= float64(e.CoverageRadiusMeters) {
			out = append(out, domain.RankedReport{Report: r, DistanceMeters: d})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DistanceMeters != out[j].DistanceMeters {
			return out[i].DistanceMeters < out[j].DistanceMeters
		}
		return strings.Compare(out[i].Report.ID.String(), out[j].Report.ID.String()) < 0
	})

	return out
}
