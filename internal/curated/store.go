// Package curated holds the hand-maintained fallback dataset. The records
// are data, not logic: skills, experience bands and posted dates were
// assigned when the records were authored.
package curated

import (
	"fmt"

	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/narendercheckout-spec/Yelvantix/internal/domain"
)

//go:embed data.yml
var rawData []byte

type record struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Company     string   `yaml:"company"`
	Location    string   `yaml:"location"`
	Type        string   `yaml:"type"`
	Experience  string   `yaml:"experience"`
	Skills      []string `yaml:"skills"`
	Description string   `yaml:"description"`
	Posted      string   `yaml:"posted"`
	Salary      string   `yaml:"salary"`
	ApplyLink   string   `yaml:"apply_link"`
}

type dataFile struct {
	Jobs []record `yaml:"jobs"`
}

// Store is the read-only curated job set. Safe for concurrent use; nothing
// mutates it after Load.
type Store struct {
	jobs []domain.Job
}

// Load parses the embedded dataset once. Called at process start.
func Load() (*Store, error) {
	var df dataFile
	if err := yaml.Unmarshal(rawData, &df); err != nil {
		return nil, fmt.Errorf("curated dataset: %w", err)
	}
	jobs := make([]domain.Job, 0, len(df.Jobs))
	for i, r := range df.Jobs {
		if r.ID == "" || r.Title == "" || r.Company == "" {
			return nil, fmt.Errorf("curated dataset: record %d missing id/title/company", i)
		}
		jobs = append(jobs, domain.Job{
			ID:              r.ID,
			Title:           r.Title,
			Company:         r.Company,
			Location:        r.Location,
			Type:            r.Type,
			ExperienceLabel: r.Experience,
			MatchedSkills:   r.Skills,
			Description:     r.Description,
			PostedDate:      r.Posted,
			Salary:          r.Salary,
			ApplyLink:       r.ApplyLink,
			Source:          domain.SourceCurated,
		})
	}
	return &Store{jobs: jobs}, nil
}

// All returns every curated job in authoring order. Callers get fresh Job
// values with their own skill slices, so downstream filtering can't touch
// the store.
func (s *Store) All() []domain.Job {
	out := make([]domain.Job, len(s.jobs))
	for i, j := range s.jobs {
		sk := make([]string, len(j.MatchedSkills))
		copy(sk, j.MatchedSkills)
		j.MatchedSkills = sk
		out[i] = j
	}
	return out
}

// Len reports the dataset size.
func (s *Store) Len() int { return len(s.jobs) }
