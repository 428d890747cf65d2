package match_test

import (
	"strings"
	"testing"

	"github.com/narendercheckout-spec/Yelvantix/internal/curated"
	"github.com/narendercheckout-spec/Yelvantix/internal/match"
	"github.com/narendercheckout-spec/Yelvantix/internal/roles"
	"github.com/narendercheckout-spec/Yelvantix/internal/skills"
)

func newEngine(t *testing.T) match.Engine {
	t.Helper()
	s, err := curated.Load()
	if err != nil {
		t.Fatalf("curated.Load: %v", err)
	}
	return match.Engine{Store: s}
}

func frontendSkills(t *testing.T) []string {
	t.Helper()
	r, err := roles.Resolve("frontend-developer")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return r.Skills
}

// ── Skill + location filtering ────────────────────────────────────────────

func TestSearch_LocationFilterKeepsRemote(t *testing.T) {
	e := newEngine(t)
	got := e.Search(frontendSkills(t), "frontend developer", "Bengaluru", "any")
	if len(got) == 0 {
		t.Fatal("expected frontend jobs in Bengaluru")
	}
	for _, j := range got {
		loc := strings.ToLower(j.Location)
		if !strings.Contains(loc, "bengaluru") && !strings.Contains(loc, "remote") {
			t.Errorf("job %q location %q is neither Bengaluru nor Remote", j.ID, j.Location)
		}
	}
}

func TestSearch_EveryResultSharesASkill(t *testing.T) {
	e := newEngine(t)
	req := frontendSkills(t)
	for _, j := range e.Search(req, "frontend developer", "", "any") {
		if skills.Overlap(j.MatchedSkills, req) == 0 {
			t.Errorf("job %q shares no skill with the request", j.ID)
		}
	}
}

func TestSearch_IndiaSentinelSkipsLocationFilter(t *testing.T) {
	e := newEngine(t)
	req := frontendSkills(t)
	all := e.Search(req, "frontend developer", "India", "any")
	none := e.Search(req, "frontend developer", "", "any")
	if len(all) != len(none) {
		t.Errorf("sentinel location filtered jobs: %d vs %d", len(all), len(none))
	}
}

func TestSearch_UnknownLocationYieldsEmpty(t *testing.T) {
	e := newEngine(t)
	got := e.Search(frontendSkills(t), "frontend developer", "Reykjavik", "any")
	// Remote jobs pass every location filter, so only non-remote matches
	// should be gone.
	for _, j := range got {
		if !strings.Contains(strings.ToLower(j.Location), "remote") {
			t.Errorf("job %q leaked through the location filter", j.ID)
		}
	}
}

func TestSearch_NoSkillOverlapAndNoTitleMatchIsEmpty(t *testing.T) {
	e := newEngine(t)
	got := e.Search([]string{"cobol", "fortran"}, "mainframe-archaeologist", "", "any")
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d jobs", len(got))
	}
}

// ── Title fallback ────────────────────────────────────────────────────────

// Skills nobody tagged, but a phrase word ("writer") longer than 3 chars
// appears in curated titles.
func TestSearch_TitleFallbackOnZeroSkillMatches(t *testing.T) {
	e := newEngine(t)
	got := e.Search([]string{"no-such-skill"}, "technical-writer", "", "any")
	if len(got) == 0 {
		t.Fatal("title fallback found nothing for technical-writer")
	}
	for _, j := range got {
		title := strings.ToLower(j.Title)
		if !strings.Contains(title, "technical writer") && !strings.Contains(title, "technical") && !strings.Contains(title, "writer") {
			t.Errorf("job %q title %q does not match the phrase fallback", j.ID, j.Title)
		}
	}
}

// ── Experience filter with graceful degradation ───────────────────────────

func TestSearch_ExperienceFilterApplied(t *testing.T) {
	e := newEngine(t)
	got := e.Search(frontendSkills(t), "frontend developer", "Bengaluru", "junior")
	if len(got) == 0 {
		t.Fatal("expected junior frontend jobs in Bengaluru")
	}
	for _, j := range got {
		if !strings.Contains(j.ExperienceLabel, "Junior") {
			t.Errorf("job %q label %q is not Junior", j.ID, j.ExperienceLabel)
		}
	}
}

// A band with no curated matches must not empty the set: the filter is
// dropped and the skill+location matches survive.
func TestSearch_ExperienceFilterDegradesInsteadOfEmptying(t *testing.T) {
	e := newEngine(t)
	// k1/k2 in Kolkata are Junior and Mid-Level only.
	withFilter := e.Search([]string{"sql", "mysql", "postgresql"}, "database administrator", "Kolkata", "lead")
	without := e.Search([]string{"sql", "mysql", "postgresql"}, "database administrator", "Kolkata", "any")
	nonRemote := 0
	for _, j := range without {
		if !strings.Contains(strings.ToLower(j.Location), "remote") {
			nonRemote++
		}
	}
	if nonRemote == 0 {
		t.Skip("fixture assumption broken: no non-remote Kolkata matches")
	}
	if len(withFilter) == 0 {
		t.Error("experience filter emptied the result set; it should have been discarded")
	}
}

// ── Ranking ───────────────────────────────────────────────────────────────

func TestSearch_RankedByOverlapDescending(t *testing.T) {
	e := newEngine(t)
	req := frontendSkills(t)
	got := e.Search(req, "frontend developer", "", "any")
	for i := 1; i < len(got); i++ {
		prev := skills.Overlap(got[i-1].MatchedSkills, req)
		cur := skills.Overlap(got[i].MatchedSkills, req)
		if cur > prev {
			t.Fatalf("ranking violated at %d: overlap %d after %d", i, cur, prev)
		}
	}
}

func TestSearch_OrderingIsIdempotent(t *testing.T) {
	e := newEngine(t)
	req := frontendSkills(t)
	a := e.Search(req, "frontend developer", "Bengaluru", "any")
	b := e.Search(req, "frontend developer", "Bengaluru", "any")
	if len(a) != len(b) {
		t.Fatalf("result sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("ordering differs at %d: %q vs %q", i, a[i].ID, b[i].ID)
		}
	}
}

// Alias-aware overlap: a request using alias forms must still match curated
// tags written in canonical form.
func TestSearch_AliasAwareSkillFilter(t *testing.T) {
	e := newEngine(t)
	got := e.Search([]string{"js", "ts"}, "frontend developer", "Bengaluru", "any")
	if len(got) == 0 {
		t.Fatal("alias forms js/ts matched nothing; expected javascript/typescript tags to hit")
	}
}
