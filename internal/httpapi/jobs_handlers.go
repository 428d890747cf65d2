package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/narendercheckout-spec/Yelvantix/internal/domain"
	"github.com/narendercheckout-spec/Yelvantix/internal/search"
)

type JobsHandler struct {
	Searcher *search.Service
}

// List answers GET /jobs. All query parameters are optional; bad values
// degrade to defaults rather than erroring, matching the pipeline's
// always-answer contract.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))

	var reqSkills []string
	if raw := strings.TrimSpace(q.Get("skills")); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				reqSkills = append(reqSkills, s)
			}
		}
	}

	res := h.Searcher.Search(r.Context(), domain.Query{
		Role:       q.Get("role"),
		Skills:     reqSkills,
		Location:   q.Get("location"),
		Experience: q.Get("experience"),
		Page:       page,
	})
	writeJSON(w, res)
}
