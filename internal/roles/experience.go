package roles

// The six experience bands used everywhere in the system, ordered.
const (
	BandFresher = "Fresher (0-1 yrs)"
	BandJunior  = "Junior (1-3 yrs)"
	BandMid     = "Mid-Level (3-5 yrs)"
	BandSenior  = "Senior (5-8 yrs)"
	BandLead    = "Lead / Principal (8+ yrs)"
	BandAny     = "Any Experience" // live adapter only, months unknown
)

// LabelForMonths maps a months-of-experience requirement to a band.
// noExperience covers both "no experience required" and records that carry
// no experience data at all. A mentioned-but-zero months value is distinct
// from Fresher and renders as "Any Experience".
func LabelForMonths(months int, noExperience bool) string {
	if noExperience {
		return BandFresher
	}
	if months <= 0 {
		return BandAny
	}
	switch {
	case months <= 12:
		return BandFresher
	case months <= 36:
		return BandJunior
	case months <= 60:
		return BandMid
	case months <= 96:
		return BandSenior
	default:
		return BandLead
	}
}

// filterLabels maps a query-level experience filter to the substring that
// must appear in a job's experience label.
var filterLabels = map[string]string{
	"fresher": "Fresher",
	"junior":  "Junior",
	"mid":     "Mid-Level",
	"senior":  "Senior",
	"lead":    "Lead",
}

// FilterLabel returns the band substring for an experience filter value,
// or "" for "any"/unrecognized filters (no filtering).
func FilterLabel(filter string) string {
	return filterLabels[filter]
}

// upstreamRequirements maps our filter to the coarse qualifier the live API
// understands.
var upstreamRequirements = map[string]string{
	"fresher": "under_3_years",
	"junior":  "under_3_years",
	"mid":     "more_than_3_years",
	"senior":  "more_than_3_years",
	"lead":    "more_than_3_years",
}

// UpstreamRequirement returns the live API's experience qualifier for a
// filter, or "" when no qualifier should be sent.
func UpstreamRequirement(filter string) string {
	return upstreamRequirements[filter]
}
