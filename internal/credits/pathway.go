package credits

// PathwayStatus describes how far a student is toward a dual-credit pathway
// (an Associate degree track or a transfer track).
type PathwayStatus string

const (
	PathwayNone     PathwayStatus = "none"
	PathwayStarted  PathwayStatus = "started"
	PathwayOnTrack  PathwayStatus = "on-track"
	PathwayComplete PathwayStatus = "complete"
)

// PathwayRule is the per-school attainment threshold for one track.
// Rules are configuration passed in by the caller, never package state.
type PathwayRule struct {
	Name            string  `json:"name"`
	RequiredCredits float64 `json:"requiredCredits"`
}

// PathwayProgress is one track's attainment for the CTE pathway report.
type PathwayProgress struct {
	Pathway    string        `json:"pathway"`
	Earned     float64       `json:"earned"`
	Required   float64       `json:"required"`
	Percentage int           `json:"percentage"`
	Status     PathwayStatus `json:"status"`
}

// AssessPathway buckets earned track credits against a rule: complete at the
// threshold, on-track at half or more, started above zero.
func AssessPathway(earned float64, rule PathwayRule) PathwayProgress {
	p := PathwayProgress{
		Pathway:    rule.Name,
		Earned:     earned,
		Required:   rule.RequiredCredits,
		Percentage: roundPercent(earned, rule.RequiredCredits),
	}

	switch {
	case rule.RequiredCredits > 0 && earned >= rule.RequiredCredits:
		p.Status = PathwayComplete
	case rule.RequiredCredits > 0 && earned >= rule.RequiredCredits/2:
		p.Status = PathwayOnTrack
	case earned > 0:
		p.Status = PathwayStarted
	default:
		p.Status = PathwayNone
	}
	return p
}
