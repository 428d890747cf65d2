package roles

import (
	"errors"
	"sort"
	"strings"
)

// ErrUnknownRole marks a role id missing from the catalog. Callers surface
// an empty result set with an error string, never a failure.
var ErrUnknownRole = errors.New("unknown role")

// Role is one catalog entry: a canonical search phrase plus the skills
// considered native to the role. Fixed at deploy time.
type Role struct {
	ID     string   `json:"id"`
	Query  string   `json:"query"`
	Skills []string `json:"skills"`
}

var catalog = map[string]Role{
	"frontend-developer":  {Query: "Frontend Developer", Skills: []string{"react", "javascript", "typescript", "css", "html", "vue", "angular"}},
	"backend-developer":   {Query: "Backend Developer", Skills: []string{"node.js", "python", "java", "sql", "spring", "django", "rest api"}},
	"fullstack-developer": {Query: "Full Stack Developer", Skills: []string{"react", "node.js", "javascript", "typescript", "sql", "mongodb"}},
	"mobile-developer":    {Query: "Mobile Developer", Skills: []string{"flutter", "react native", "swift", "kotlin", "mobile", "ios", "android"}},
	"devops-engineer":     {Query: "DevOps Engineer", Skills: []string{"aws", "docker", "kubernetes", "linux", "python", "ci/cd", "terraform"}},
	"data-scientist":      {Query: "Data Scientist", Skills: []string{"python", "machine learning", "sql", "data analysis", "tensorflow", "pytorch"}},
	"data-analyst":        {Query: "Data Analyst", Skills: []string{"python", "sql", "excel", "data analysis", "power bi", "tableau"}},
	"qa-engineer":         {Query: "QA Engineer", Skills: []string{"testing", "selenium", "python", "java", "sql", "automation"}},
	"ui-ux-designer":      {Query: "UI UX Designer", Skills: []string{"figma", "design", "css", "html", "photoshop", "sketch"}},
	"product-designer":    {Query: "Product Designer", Skills: []string{"figma", "design", "css", "html", "prototyping", "user research"}},
	"cloud-engineer":      {Query: "Cloud Engineer", Skills: []string{"aws", "azure", "gcp", "docker", "kubernetes", "terraform"}},
	"database-admin":      {Query: "Database Administrator", Skills: []string{"sql", "mysql", "postgresql", "mongodb", "oracle", "performance tuning"}},
	"security-engineer":   {Query: "Security Engineer", Skills: []string{"cybersecurity", "penetration testing", "network security", "python", "linux"}},
	"technical-writer":    {Query: "Technical Writer", Skills: []string{"writing", "documentation", "html", "markdown", "api documentation"}},
	"product-manager":     {Query: "Product Manager", Skills: []string{"product management", "agile", "jira", "data analysis", "roadmap"}},
}

// Resolve looks up a role id (kebab-case).
func Resolve(id string) (Role, error) {
	r, ok := catalog[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Role{}, ErrUnknownRole
	}
	r.ID = strings.ToLower(strings.TrimSpace(id))
	return r, nil
}

// All returns the catalog sorted by id, for the /roles listing.
func All() []Role {
	out := make([]Role, 0, len(catalog))
	for id, r := range catalog {
		r.ID = id
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
