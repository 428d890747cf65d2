// Package search is the top-level query pipeline: validate, try the live
// source, fall back to curated, always answer with a well-formed envelope.
package search

import (
	"context"
	"database/sql"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/narendercheckout-spec/Yelvantix/internal/domain"
	"github.com/narendercheckout-spec/Yelvantix/internal/events"
	"github.com/narendercheckout-spec/Yelvantix/internal/jsearch"
	"github.com/narendercheckout-spec/Yelvantix/internal/match"
	"github.com/narendercheckout-spec/Yelvantix/internal/roles"
	"github.com/narendercheckout-spec/Yelvantix/internal/skills"
	"github.com/narendercheckout-spec/Yelvantix/internal/store"
)

// SourceJSearch is the envelope tag for live results; jobs inside still
// carry source "live".
const SourceJSearch = "jsearch"

const defaultLocation = "India"

type Service struct {
	Live   *jsearch.Client
	Engine match.Engine

	// DefaultLocation fills an empty query location. Empty means "India".
	DefaultLocation string

	// Optional result cache. Any cache failure degrades to a direct
	// fetch; it never fails a request.
	Cache    *sql.DB
	CacheTTL time.Duration

	Hub *events.Hub // optional

	group singleflight.Group
}

// resolved is what the validation stage hands the rest of the pipeline.
type resolved struct {
	skills      []string
	phrase      string // live API search phrase
	titlePhrase string // curated title-fallback phrase
}

// Search runs one query through the pipeline. Every failure path ends in a
// defined fallback or a well-formed empty response; nothing escapes as an
// error to the caller.
func (s *Service) Search(ctx context.Context, q domain.Query) domain.Result {
	if q.Page < 1 {
		q.Page = 1
	}
	if strings.TrimSpace(q.Location) == "" {
		if q.Location = s.DefaultLocation; q.Location == "" {
			q.Location = defaultLocation
		}
	}
	if strings.TrimSpace(q.Experience) == "" {
		q.Experience = "any"
	}

	r, ok := s.resolve(q)
	if !ok {
		return domain.Result{Jobs: []domain.Job{}, Total: 0, Error: "Invalid role"}
	}

	if s.Live != nil && s.Live.Configured() {
		if jobs := s.fetchLive(ctx, r, q); len(jobs) > 0 {
			s.publish(ctx, "search_completed", map[string]any{"source": SourceJSearch, "total": len(jobs)})
			return domain.Result{Jobs: jobs, Total: len(jobs), Source: SourceJSearch}
		}
	}

	jobs := s.Engine.Search(r.skills, r.titlePhrase, q.Location, q.Experience)
	s.publish(ctx, "search_completed", map[string]any{"source": domain.SourceCurated, "total": len(jobs)})
	return domain.Result{Jobs: jobs, Total: len(jobs), Source: domain.SourceCurated}
}

// resolve validates the role id, falling back to a free-form skill list
// when one was supplied.
func (s *Service) resolve(q domain.Query) (resolved, bool) {
	if role, err := roles.Resolve(q.Role); err == nil {
		return resolved{
			skills:      role.Skills,
			phrase:      role.Query,
			titlePhrase: strings.ReplaceAll(role.ID, "-", " "),
		}, true
	}

	var free []string
	for _, sk := range q.Skills {
		if n := skills.Normalize(sk); n != "" {
			free = append(free, n)
		}
	}
	if len(free) == 0 {
		return resolved{}, false
	}
	phrase := strings.Join(free, " ")
	return resolved{skills: free, phrase: phrase, titlePhrase: phrase}, true
}

// fetchLive consults the cache, collapses concurrent identical queries, and
// runs at most one bounded upstream request. All failures are logged and
// reported as an empty set so the caller falls back to curated.
func (s *Service) fetchLive(ctx context.Context, r resolved, q domain.Query) []domain.Job {
	key := store.CacheKey(r.phrase, q.Location, q.Experience, q.Page)

	if s.Cache != nil {
		if jobs, hit, err := store.GetCachedResults(ctx, s.Cache, key); err != nil {
			log.Printf("[search] cache read error: %v", err)
		} else if hit {
			return jobs
		}
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		jobs, ferr := s.Live.Fetch(ctx, r.phrase, q.Location, q.Page, q.Experience, r.skills)
		if ferr != nil {
			return nil, ferr
		}
		if s.Cache != nil && len(jobs) > 0 {
			ttl := s.CacheTTL
			if ttl <= 0 {
				ttl = 5 * time.Minute
			}
			if perr := store.PutCachedResults(ctx, s.Cache, key, jobs, ttl); perr != nil {
				log.Printf("[search] cache write error: %v", perr)
			}
		}
		return jobs, nil
	})
	if err != nil {
		// Recoverable by contract: log, note it on the event stream,
		// and let the curated path answer.
		log.Printf("[jsearch] falling back to curated: %v", err)
		s.publish(ctx, "upstream_unavailable", map[string]any{"reason": err.Error()})
		return nil
	}
	jobs, _ := v.([]domain.Job)
	return jobs
}

func (s *Service) publish(ctx context.Context, typ string, data map[string]any) {
	if s.Hub == nil {
		return
	}
	s.Hub.Publish(events.MakeEvent(events.RequestIDFrom(ctx), typ, 1, data))
}
