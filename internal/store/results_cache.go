package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/narendercheckout-spec/Yelvantix/internal/domain"
)

// CacheKey derives a stable signature for one live query. Identical
// role/location/experience/page combinations share a cache row.
func CacheKey(phrase, location, experience string, page int) string {
	sig := fmt.Sprintf("%s|%s|%s|%d",
		strings.ToLower(strings.TrimSpace(phrase)),
		strings.ToLower(strings.TrimSpace(location)),
		strings.ToLower(strings.TrimSpace(experience)),
		page,
	)
	h := sha256.Sum256([]byte(sig))
	return hex.EncodeToString(h[:])
}

// GetCachedResults returns the jobs stored under key if the row exists and
// has not expired. A miss is (nil, false, nil).
func GetCachedResults(ctx context.Context, db *sql.DB, key string) ([]domain.Job, bool, error) {
	var payload []byte
	var expiresAt string
	err := db.QueryRowContext(ctx,
		`SELECT payload, expires_at FROM results_cache WHERE key = ? LIMIT 1;`, key,
	).Scan(&payload, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	exp, err := time.Parse(time.RFC3339, expiresAt)
	if err != nil || time.Now().After(exp) {
		return nil, false, nil
	}

	var jobs []domain.Job
	if err := json.Unmarshal(payload, &jobs); err != nil {
		// poisoned row: drop it and report a miss
		_, _ = db.ExecContext(ctx, `DELETE FROM results_cache WHERE key = ?;`, key)
		return nil, false, nil
	}
	return jobs, true, nil
}

// PutCachedResults stores a normalized live result set under key for ttl.
func PutCachedResults(ctx context.Context, db *sql.DB, key string, jobs []domain.Job, ttl time.Duration) error {
	payload, err := json.Marshal(jobs)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = db.ExecContext(ctx, `
INSERT OR REPLACE INTO results_cache(key, payload, total, fetched_at, expires_at)
VALUES(?,?,?,?,?);`,
		key,
		payload,
		len(jobs),
		now.Format(time.RFC3339),
		now.Add(ttl).Format(time.RFC3339),
	)
	return err
}

// PruneExpired deletes rows past their expiry. Run periodically.
func PruneExpired(ctx context.Context, db *sql.DB) (int64, error) {
	res, err := db.ExecContext(ctx,
		`DELETE FROM results_cache WHERE expires_at < ?;`,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}
