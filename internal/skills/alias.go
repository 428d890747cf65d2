package skills

import "strings"

// aliases maps a normalized skill token to the other tokens that denote the
// same skill. Equivalence is declared in both directions where intended;
// the table is not transitive by construction. devops->ci/cd is deliberately
// one-directional.
var aliases = map[string][]string{
	"js":               {"javascript"},
	"javascript":       {"js"},
	"ts":               {"typescript"},
	"typescript":       {"ts"},
	"node":             {"node.js", "nodejs"},
	"node.js":          {"node", "nodejs"},
	"nodejs":           {"node", "node.js"},
	"react":            {"react.js", "reactjs"},
	"react.js":         {"react", "reactjs"},
	"reactjs":          {"react", "react.js"},
	"next":             {"next.js", "nextjs"},
	"next.js":          {"next", "nextjs"},
	"nextjs":           {"next", "next.js"},
	"vue":              {"vue.js", "vuejs"},
	"vue.js":           {"vue", "vuejs"},
	"vuejs":            {"vue", "vue.js"},
	"ml":               {"machine learning"},
	"machine learning": {"ml"},
	"k8s":              {"kubernetes"},
	"kubernetes":       {"k8s"},
	"postgres":         {"postgresql"},
	"postgresql":       {"postgres"},
	"design":           {"figma", "ui/ux", "ui ux", "uiux"},
	"figma":            {"design"},
	"devops":           {"ci/cd"},
}

// Normalize lower-cases and trims a skill token.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Equivalent reports whether two tokens denote the same skill: identical
// after normalization, or b appears in a's alias set. Pure lookup, no
// fuzzy matching or stemming. Unknown skills equal only themselves.
func Equivalent(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == nb {
		return true
	}
	for _, alt := range aliases[na] {
		if alt == nb {
			return true
		}
	}
	return false
}

// AnyEquivalent reports whether any token in have matches want.
func AnyEquivalent(have []string, want string) bool {
	for _, h := range have {
		if Equivalent(h, want) {
			return true
		}
	}
	return false
}

// Overlap counts how many of a job's tagged skills match any requested
// skill. Used as the ranking key for curated results.
func Overlap(jobSkills, requested []string) int {
	n := 0
	for _, js := range jobSkills {
		for _, rs := range requested {
			if Equivalent(rs, js) {
				n++
				break
			}
		}
	}
	return n
}
