// Package jsearch adapts the JSearch API (RapidAPI) to the internal job
// shape. The upstream schema is treated as untrusted: optional fields are
// checked defensively and bad records are skipped, never fatal.
package jsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/narendercheckout-spec/Yelvantix/internal/domain"
	"github.com/narendercheckout-spec/Yelvantix/internal/roles"
)

// ErrUnavailable marks the recoverable upstream class: network failure,
// non-2xx status, or an empty payload. Callers fall back to curated.
var ErrUnavailable = errors.New("jsearch unavailable")

type Config struct {
	Endpoint  string // https://jsearch.p.rapidapi.com/search
	Host      string // jsearch.p.rapidapi.com
	APIKey    string
	Timeout   time.Duration
	ReqPerSec float64
	Burst     int
}

type Client struct {
	mu      sync.RWMutex // guards cfg.APIKey, updatable at runtime
	cfg     Config
	hc      *http.Client
	limiter *rate.Limiter
	now     func() time.Time
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.ReqPerSec <= 0 {
		cfg.ReqPerSec = 2
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 2
	}
	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.ReqPerSec), cfg.Burst),
		now:     time.Now,
	}
}

// Configured reports whether an API key is present. Absence is a valid
// state that routes every query to the curated path.
func (c *Client) Configured() bool { return c.apiKey() != "" }

// SetAPIKey swaps the key without restarting the engine.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	c.cfg.APIKey = strings.TrimSpace(key)
	c.mu.Unlock()
}

func (c *Client) apiKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return strings.TrimSpace(c.cfg.APIKey)
}

type payload struct {
	Data []record `json:"data"`
}

// Fetch runs one bounded request against the upstream and returns the
// normalized, relevance-filtered jobs. A nil error with zero jobs means the
// upstream answered but nothing overlapped the requested skills.
func (c *Client) Fetch(ctx context.Context, phrase, location string, page int, expFilter string, roleSkills []string) ([]domain.Job, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("%w: no API key", ErrUnavailable)
	}
	if page < 1 {
		page = 1
	}

	q := url.Values{}
	q.Set("query", phrase+" in "+location)
	q.Set("page", strconv.Itoa(page))
	q.Set("num_pages", "1")
	q.Set("date_posted", "month")
	if req := roles.UpstreamRequirement(expFilter); req != "" {
		q.Set("job_requirements", req)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey())
	req.Header.Set("x-rapidapi-host", c.cfg.Host)

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, res.StatusCode)
	}

	var body payload
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	if len(body.Data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrUnavailable)
	}

	now := c.now()
	jobs := make([]domain.Job, 0, len(body.Data))
	for i, rec := range body.Data {
		j, ok := normalize(rec, i, roleSkills, location, now)
		if !ok {
			continue // no skill overlap: irrelevant, dropped entirely
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}
