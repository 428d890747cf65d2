package skills_test

import (
	"testing"

	"github.com/narendercheckout-spec/Yelvantix/internal/skills"
)

// ── Equivalent: symmetric pairs ───────────────────────────────────────────

func TestEquivalent_SymmetricAliases(t *testing.T) {
	pairs := [][2]string{
		{"js", "javascript"},
		{"ts", "typescript"},
		{"node", "nodejs"},
		{"node.js", "node"},
		{"react", "reactjs"},
		{"reactjs", "react.js"},
		{"vue", "vue.js"},
		{"vuejs", "vue"},
		{"nextjs", "next.js"},
		{"ml", "machine learning"},
		{"k8s", "kubernetes"},
		{"postgres", "postgresql"},
	}
	for _, p := range pairs {
		if !skills.Equivalent(p[0], p[1]) {
			t.Errorf("Equivalent(%q, %q) = false, want true", p[0], p[1])
		}
		if !skills.Equivalent(p[1], p[0]) {
			t.Errorf("Equivalent(%q, %q) = false, want true", p[1], p[0])
		}
	}
}

func TestEquivalent_Identity(t *testing.T) {
	for _, s := range []string{"rust", "figma", "ci/cd", "some unknown skill"} {
		if !skills.Equivalent(s, s) {
			t.Errorf("Equivalent(%q, %q) = false, want true", s, s)
		}
	}
}

func TestEquivalent_NormalizesCaseAndSpace(t *testing.T) {
	if !skills.Equivalent("  JS ", "JavaScript") {
		t.Error("Equivalent should normalize case and whitespace before comparing")
	}
}

func TestEquivalent_UnrelatedSkills(t *testing.T) {
	if skills.Equivalent("foo", "bar") {
		t.Error(`Equivalent("foo", "bar") = true, want false`)
	}
	if skills.Equivalent("java", "javascript") {
		t.Error(`Equivalent("java", "javascript") = true, want false (no alias entry)`)
	}
}

// devops->ci/cd is a known one-directional rule; the reverse direction was
// never declared and must stay false.
func TestEquivalent_DevopsAsymmetry(t *testing.T) {
	if !skills.Equivalent("devops", "ci/cd") {
		t.Error(`Equivalent("devops", "ci/cd") = false, want true`)
	}
	if skills.Equivalent("ci/cd", "devops") {
		t.Error(`Equivalent("ci/cd", "devops") = true, want false (one-directional rule)`)
	}
}

// ── Overlap ───────────────────────────────────────────────────────────────

func TestOverlap(t *testing.T) {
	jobSkills := []string{"reactjs", "nodejs", "css", "figma"}
	requested := []string{"react", "node.js", "python"}
	if got := skills.Overlap(jobSkills, requested); got != 2 {
		t.Errorf("Overlap = %d, want 2 (reactjs~react, nodejs~node.js)", got)
	}
	if got := skills.Overlap(nil, requested); got != 0 {
		t.Errorf("Overlap(nil, ...) = %d, want 0", got)
	}
}

func TestAnyEquivalent(t *testing.T) {
	if !skills.AnyEquivalent([]string{"css", "js"}, "javascript") {
		t.Error("AnyEquivalent should find js~javascript")
	}
	if skills.AnyEquivalent([]string{"css", "html"}, "python") {
		t.Error("AnyEquivalent found a match where none exists")
	}
}
