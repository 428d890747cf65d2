package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func Validate(cfg Config) error {
	var errs []string

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		errs = append(errs, "app.port must be 1..65535")
	}
	if strings.TrimSpace(cfg.JSearch.Endpoint) == "" {
		errs = append(errs, "jsearch.endpoint is required")
	}
	if strings.TrimSpace(cfg.JSearch.Host) == "" {
		errs = append(errs, "jsearch.host is required")
	}
	if cfg.JSearch.TimeoutSeconds < 0 {
		errs = append(errs, "jsearch.timeout_seconds must be >= 0")
	}
	if cfg.JSearch.RequestsPerSecond < 0 {
		errs = append(errs, "jsearch.requests_per_second must be >= 0")
	}
	if cfg.Cache.TTLMinutes < 0 {
		errs = append(errs, "cache.ttl_minutes must be >= 0")
	}
	if cfg.Cache.PruneMinutes < 0 {
		errs = append(errs, "cache.prune_minutes must be >= 0")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

func SaveAtomic(path string, cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}
