package search_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/narendercheckout-spec/Yelvantix/internal/curated"
	"github.com/narendercheckout-spec/Yelvantix/internal/domain"
	"github.com/narendercheckout-spec/Yelvantix/internal/jsearch"
	"github.com/narendercheckout-spec/Yelvantix/internal/match"
	"github.com/narendercheckout-spec/Yelvantix/internal/search"
	"github.com/narendercheckout-spec/Yelvantix/internal/skills"
	"github.com/narendercheckout-spec/Yelvantix/internal/store"
)

func newEngine(t *testing.T) match.Engine {
	t.Helper()
	s, err := curated.Load()
	if err != nil {
		t.Fatalf("curated.Load: %v", err)
	}
	return match.Engine{Store: s}
}

func liveClient(t *testing.T, handler http.HandlerFunc) *jsearch.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return jsearch.New(jsearch.Config{
		Endpoint:  srv.URL,
		Host:      "jsearch.p.rapidapi.com",
		APIKey:    "test-key",
		Timeout:   2 * time.Second,
		ReqPerSec: 100,
		Burst:     100,
	})
}

const liveBody = `{"data":[{"job_id":"live-1","job_title":"React Developer","employer_name":"Acme","job_city":"Bengaluru","job_description":"We use react, typescript and css."}]}`

// ── Validation ────────────────────────────────────────────────────────────

func TestSearch_InvalidRole(t *testing.T) {
	svc := &search.Service{Engine: newEngine(t)}
	res := svc.Search(context.Background(), domain.Query{Role: "astronaut"})
	if res.Error != "Invalid role" {
		t.Errorf("Error = %q, want %q", res.Error, "Invalid role")
	}
	if res.Total != 0 || len(res.Jobs) != 0 || res.Jobs == nil {
		t.Errorf("invalid role must return an empty (non-nil) jobs array, got %+v", res)
	}
}

func TestSearch_FreeFormSkillsInsteadOfRole(t *testing.T) {
	svc := &search.Service{Engine: newEngine(t)}
	res := svc.Search(context.Background(), domain.Query{Skills: []string{"React", " js "}})
	if res.Error != "" {
		t.Fatalf("unexpected error: %q", res.Error)
	}
	if res.Source != domain.SourceCurated || res.Total == 0 {
		t.Fatalf("free-form skills should hit the curated path, got %+v", res)
	}
	for _, j := range res.Jobs {
		if skills.Overlap(j.MatchedSkills, []string{"react", "js"}) == 0 {
			t.Errorf("job %q shares no requested skill", j.ID)
		}
	}
}

// ── Curated fallback path ─────────────────────────────────────────────────

func TestSearch_NoAPIKeyRoutesToCurated(t *testing.T) {
	svc := &search.Service{
		Live:   jsearch.New(jsearch.Config{Endpoint: "http://127.0.0.1:0", Host: "h"}),
		Engine: newEngine(t),
	}
	res := svc.Search(context.Background(), domain.Query{
		Role: "frontend-developer", Location: "Bengaluru", Experience: "junior", Page: 1,
	})
	if res.Source != domain.SourceCurated {
		t.Fatalf("Source = %q, want curated", res.Source)
	}
	if res.Total != len(res.Jobs) || res.Total == 0 {
		t.Fatalf("Total = %d, Jobs = %d", res.Total, len(res.Jobs))
	}
	want := []string{"react", "javascript", "typescript", "css", "html", "vue", "angular"}
	for _, j := range res.Jobs {
		loc := strings.ToLower(j.Location)
		if !strings.Contains(loc, "bengaluru") && !strings.Contains(loc, "remote") {
			t.Errorf("job %q location %q fails the location property", j.ID, j.Location)
		}
		if skills.Overlap(j.MatchedSkills, want) == 0 {
			t.Errorf("job %q shares no skill with the frontend set", j.ID)
		}
		if j.Source != domain.SourceCurated {
			t.Errorf("job %q source = %q", j.ID, j.Source)
		}
	}
}

func TestSearch_UpstreamFailureFallsBack(t *testing.T) {
	svc := &search.Service{
		Live: liveClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}),
		Engine: newEngine(t),
	}
	res := svc.Search(context.Background(), domain.Query{Role: "frontend-developer"})
	if res.Source != domain.SourceCurated {
		t.Errorf("Source = %q, want curated after upstream failure", res.Source)
	}
	if res.Error != "" {
		t.Errorf("upstream failure must not surface an error, got %q", res.Error)
	}
}

func TestSearch_IrrelevantLivePayloadFallsBack(t *testing.T) {
	svc := &search.Service{
		Live: liveClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[{"job_id":"1","job_title":"Chef","employer_name":"Bistro","job_description":"cooking"}]}`))
		}),
		Engine: newEngine(t),
	}
	res := svc.Search(context.Background(), domain.Query{Role: "frontend-developer"})
	if res.Source != domain.SourceCurated {
		t.Errorf("Source = %q, want curated when relevance filter empties live results", res.Source)
	}
}

// ── Live path ─────────────────────────────────────────────────────────────

func TestSearch_LiveResultsTaggedJSearch(t *testing.T) {
	svc := &search.Service{
		Live: liveClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(liveBody))
		}),
		Engine: newEngine(t),
	}
	res := svc.Search(context.Background(), domain.Query{Role: "frontend-developer", Location: "Bengaluru"})
	if res.Source != search.SourceJSearch {
		t.Fatalf("Source = %q, want %q", res.Source, search.SourceJSearch)
	}
	if res.Total != 1 || res.Jobs[0].ID != "live-1" {
		t.Fatalf("unexpected live result: %+v", res)
	}
	if res.Jobs[0].Source != domain.SourceLive {
		t.Errorf("job source = %q, want live", res.Jobs[0].Source)
	}
}

// ── Cache ─────────────────────────────────────────────────────────────────

func TestSearch_CacheShortCircuitsSecondCall(t *testing.T) {
	var calls int32
	db, err := store.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := store.Migrate(db.Pool); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	svc := &search.Service{
		Live: liveClient(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.Write([]byte(liveBody))
		}),
		Engine:   newEngine(t),
		Cache:    db.Pool,
		CacheTTL: time.Minute,
	}

	q := domain.Query{Role: "frontend-developer", Location: "Bengaluru"}
	first := svc.Search(context.Background(), q)
	second := svc.Search(context.Background(), q)

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("upstream called %d times, want 1 (second should be a cache hit)", got)
	}
	if first.Source != search.SourceJSearch || second.Source != search.SourceJSearch {
		t.Errorf("sources = %q / %q, want jsearch for both", first.Source, second.Source)
	}
	if len(first.Jobs) != len(second.Jobs) || first.Jobs[0].ID != second.Jobs[0].ID {
		t.Error("cached result differs from the original")
	}
}
