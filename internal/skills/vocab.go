package skills

// Known is the wider industry vocabulary consulted when padding a live
// posting's matched skills past the role's own list. Matching is plain
// case-insensitive substring containment, same as the relevance filter.
var Known = []string{
	"javascript", "python", "react", "sql", "node.js", "typescript",
	"css", "html", "aws", "docker", "figma", "excel", "java", "go",
	"rust", "c++", "c#", ".net", "angular", "vue", "next.js", "django",
	"flask", "spring", "mongodb", "postgresql", "mysql", "redis",
	"kubernetes", "terraform", "git", "linux", "azure", "gcp",
	"graphql", "rest api", "machine learning", "data analysis", "power bi",
	"tableau", "seo", "content", "marketing", "photoshop",
	"illustrator", "flutter", "swift", "kotlin", "php", "laravel",
	"ruby", "rails", "salesforce", "devops", "ci/cd",
	"selenium", "testing", "qa",
}
