// Package match filters and ranks curated jobs against a requested skill
// set. It never touches the live source; the orchestrator decides which
// path runs.
package match

import (
	"sort"
	"strings"

	"github.com/narendercheckout-spec/Yelvantix/internal/curated"
	"github.com/narendercheckout-spec/Yelvantix/internal/domain"
	"github.com/narendercheckout-spec/Yelvantix/internal/roles"
	"github.com/narendercheckout-spec/Yelvantix/internal/skills"
)

// locationSentinel disables location filtering; the curated data spans the
// whole country, so "india" means everything.
const locationSentinel = "india"

type Engine struct {
	Store *curated.Store
}

// Search runs the curated pipeline: skill filter (with a title fallback),
// location filter, experience filter with graceful degradation, then a
// stable relevance sort. An empty result is a normal outcome; the engine
// never pads with unrelated jobs.
func (e Engine) Search(requested []string, titlePhrase, location, expFilter string) []domain.Job {
	candidates := e.Store.All()

	// Step 1: keep jobs sharing at least one skill with the request.
	var filtered []domain.Job
	for _, j := range candidates {
		if skills.Overlap(j.MatchedSkills, requested) > 0 {
			filtered = append(filtered, j)
		}
	}

	// Broader fallback: match the role phrase (or any word of it longer
	// than 3 chars) against job titles.
	if len(filtered) == 0 {
		phrase := strings.ToLower(strings.ReplaceAll(titlePhrase, "-", " "))
		words := strings.Fields(phrase)
		for _, j := range candidates {
			title := strings.ToLower(j.Title)
			if phrase != "" && strings.Contains(title, phrase) {
				filtered = append(filtered, j)
				continue
			}
			for _, w := range words {
				if len(w) > 3 && strings.Contains(title, w) {
					filtered = append(filtered, j)
					break
				}
			}
		}
	}

	// Step 2: location. Remote jobs pass every location filter.
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc != "" && loc != locationSentinel {
		kept := filtered[:0]
		for _, j := range filtered {
			jobLoc := strings.ToLower(j.Location)
			if strings.Contains(jobLoc, loc) || strings.Contains(jobLoc, "remote") {
				kept = append(kept, j)
			}
		}
		filtered = kept
	}

	// Step 3: experience, applied only if it leaves something. Skill and
	// location decide membership; the band never empties the set on its own.
	if label := roles.FilterLabel(expFilter); label != "" {
		var banded []domain.Job
		for _, j := range filtered {
			if strings.Contains(j.ExperienceLabel, label) {
				banded = append(banded, j)
			}
		}
		if len(banded) > 0 {
			filtered = banded
		}
	}

	// Step 4: rank by how many requested skills each job matches. Stable,
	// so ties keep authoring order and reruns are identical.
	sort.SliceStable(filtered, func(i, k int) bool {
		return skills.Overlap(filtered[i].MatchedSkills, requested) >
			skills.Overlap(filtered[k].MatchedSkills, requested)
	})

	if filtered == nil {
		return []domain.Job{}
	}
	return filtered
}
