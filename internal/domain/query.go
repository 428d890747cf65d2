package domain

// Query is one search request. Transient; not retained between requests.
type Query struct {
	Role       string   // catalog id, e.g. "frontend-developer"
	Skills     []string // free-form skill list; used when Role doesn't resolve
	Location   string   // free text; "India" acts as the no-filter sentinel
	Experience string   // any | fresher | junior | mid | senior | lead
	Page       int      // live source only
}

// Result is the envelope every caller gets, well-formed on every path.
type Result struct {
	Jobs   []Job  `json:"jobs"`
	Total  int    `json:"total"`
	Source string `json:"source,omitempty"` // "jsearch" or "curated"
	Error  string `json:"error,omitempty"`
}
