package jsearch

import (
	"strconv"
	"strings"
	"time"

	"github.com/narendercheckout-spec/Yelvantix/internal/domain"
	"github.com/narendercheckout-spec/Yelvantix/internal/roles"
	"github.com/narendercheckout-spec/Yelvantix/internal/skills"
)

// record mirrors the slice of the upstream schema we consume. Everything
// the API marks nullable is a pointer here.
type record struct {
	JobID             string   `json:"job_id"`
	JobTitle          string   `json:"job_title"`
	EmployerName      string   `json:"employer_name"`
	EmployerLogo      *string  `json:"employer_logo"`
	JobCity           string   `json:"job_city"`
	JobState          string   `json:"job_state"`
	JobCountry        string   `json:"job_country"`
	JobEmploymentType string   `json:"job_employment_type"`
	JobDescription    string   `json:"job_description"`
	JobApplyLink      string   `json:"job_apply_link"`
	PostedAtUTC       string   `json:"job_posted_at_datetime_utc"`
	MinSalary         *float64 `json:"job_min_salary"`
	MaxSalary         *float64 `json:"job_max_salary"`
	SalaryCurrency    *string  `json:"job_salary_currency"`
	SalaryPeriod      *string  `json:"job_salary_period"`

	RequiredExperience *struct {
		NoExperienceRequired bool `json:"no_experience_required"`
		RequiredMonths       *int `json:"required_experience_in_months"`
		ExperienceMentioned  bool `json:"experience_mentioned"`
	} `json:"job_required_experience"`

	Highlights *struct {
		Qualifications   []string `json:"Qualifications"`
		Responsibilities []string `json:"Responsibilities"`
	} `json:"job_highlights"`
}

// employmentTypes maps the upstream's type codes. Unrecognized codes
// default to Full-time.
var employmentTypes = map[string]string{
	"FULLTIME":   "Full-time",
	"PARTTIME":   "Part-time",
	"CONTRACTOR": "Contract",
	"INTERN":     "Internship",
}

func employmentType(code string) string {
	if t, ok := employmentTypes[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return t
	}
	return "Full-time"
}

// searchText is the haystack for skill containment: title, raw description
// and qualification bullets, lowercased. Substring matching is intentional:
// "java" matching inside "javascript" reproduces upstream behavior.
func searchText(rec record) string {
	parts := []string{rec.JobTitle, rec.JobDescription}
	if rec.Highlights != nil {
		parts = append(parts, rec.Highlights.Qualifications...)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// matchedSkills collects role skills found in the text, then pads from the
// wider known vocabulary, capped at domain.MatchedSkillsCap.
func matchedSkills(text string, roleSkills []string) []string {
	var out []string
	seen := map[string]bool{}
	add := func(s string) {
		s = skills.Normalize(s)
		if s == "" || seen[s] || len(out) >= domain.MatchedSkillsCap {
			return
		}
		seen[s] = true
		out = append(out, s)
	}
	for _, s := range roleSkills {
		if strings.Contains(text, skills.Normalize(s)) {
			add(s)
		}
	}
	for _, s := range skills.Known {
		if len(out) >= domain.MatchedSkillsCap {
			break
		}
		if strings.Contains(text, s) {
			add(s)
		}
	}
	return out
}

func experienceLabel(rec record) string {
	exp := rec.RequiredExperience
	if exp == nil || exp.NoExperienceRequired {
		return roles.LabelForMonths(0, true)
	}
	months := 0
	if exp.RequiredMonths != nil {
		months = *exp.RequiredMonths
	}
	return roles.LabelForMonths(months, false)
}

func jobLocation(rec record, fallback string) string {
	var parts []string
	for _, p := range []string{rec.JobCity, rec.JobState, rec.JobCountry} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, ", ")
}

// normalize turns one upstream record into a Job. The second return is
// false when the record shares no skill with the request; such records are
// dropped, which is exactly the relevance filter.
func normalize(rec record, idx int, roleSkills []string, requestedLocation string, now time.Time) (domain.Job, bool) {
	text := searchText(rec)

	relevant := false
	for _, s := range roleSkills {
		if strings.Contains(text, skills.Normalize(s)) {
			relevant = true
			break
		}
	}
	if !relevant {
		return domain.Job{}, false
	}

	id := rec.JobID
	if id == "" {
		id = "api-" + strconv.Itoa(idx)
	}

	logo := ""
	if rec.EmployerLogo != nil {
		logo = *rec.EmployerLogo
	}

	return domain.Job{
		ID:              id,
		Title:           rec.JobTitle,
		Company:         rec.EmployerName,
		Location:        jobLocation(rec, requestedLocation),
		Type:            employmentType(rec.JobEmploymentType),
		ExperienceLabel: experienceLabel(rec),
		MatchedSkills:   matchedSkills(text, roleSkills),
		Description:     truncateDescription(rec.JobDescription),
		PostedDate:      relativeTime(rec.PostedAtUTC, now),
		Salary:          formatSalary(rec),
		ApplyLink:       rec.JobApplyLink,
		EmployerLogo:    logo,
		Source:          domain.SourceLive,
	}, true
}
