package domain

// Source values a Job may carry. Exactly one of these, never both.
const (
	SourceLive    = "live"
	SourceCurated = "curated"
)

// MatchedSkillsCap bounds matchedSkills on every job we hand out.
const MatchedSkillsCap = 8

// Job is one normalized posting. Built fresh on every query, never
// persisted, never mutated after construction.
type Job struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Type            string   `json:"type"`
	ExperienceLabel string   `json:"experienceLabel"`
	MatchedSkills   []string `json:"matchedSkills"`
	Description     string   `json:"description"`
	PostedDate      string   `json:"postedDate"`
	Salary          string   `json:"salary,omitempty"`
	ApplyLink       string   `json:"applyLink,omitempty"`
	EmployerLogo    string   `json:"employerLogo,omitempty"`
	Source          string   `json:"source"`
}
