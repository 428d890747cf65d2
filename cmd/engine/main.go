package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"github.com/narendercheckout-spec/Yelvantix/internal/config"
	"github.com/narendercheckout-spec/Yelvantix/internal/curated"
	"github.com/narendercheckout-spec/Yelvantix/internal/events"
	"github.com/narendercheckout-spec/Yelvantix/internal/httpapi"
	"github.com/narendercheckout-spec/Yelvantix/internal/jsearch"
	"github.com/narendercheckout-spec/Yelvantix/internal/match"
	"github.com/narendercheckout-spec/Yelvantix/internal/scheduler"
	"github.com/narendercheckout-spec/Yelvantix/internal/search"
	"github.com/narendercheckout-spec/Yelvantix/internal/secrets"
	"github.com/narendercheckout-spec/Yelvantix/internal/store"
)

func main() {
	_ = godotenv.Load()

	// Engine data dir: use env if provided (a desktop shell can pass one),
	// else local folder.
	dataDir := os.Getenv("YELVANTIX_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// Single instance per data dir. A second engine against the same sqlite
	// file would fight over the writer connection.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("data dir lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another engine instance is already using %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config invalid (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	db, err := store.Open(filepath.Join(dataDir, "yelvantix.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	curatedStore, err := curated.Load()
	if err != nil {
		log.Fatalf("curated dataset failed to load: %v", err)
	}
	log.Printf("[curated] %d jobs loaded", curatedStore.Len())

	live := jsearch.New(jsearch.Config{
		Endpoint:  cfg.JSearch.Endpoint,
		Host:      cfg.JSearch.Host,
		APIKey:    secrets.RapidAPIKey(),
		Timeout:   cfg.JSearchTimeout(),
		ReqPerSec: cfg.JSearch.RequestsPerSecond,
		Burst:     cfg.JSearch.Burst,
	})
	if live.Configured() {
		log.Println("[jsearch] API key present, live source enabled")
	} else {
		log.Println("[jsearch] no API key, serving curated only")
	}

	hub := events.NewHub()

	svc := &search.Service{
		Live:            live,
		Engine:          match.Engine{Store: curatedStore},
		DefaultLocation: cfg.Search.DefaultLocation,
		Cache:           db.Pool,
		CacheTTL:        cfg.CacheTTL(),
		Hub:             hub,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(db.Pool, time.Duration(cfg.Cache.PruneMinutes)*time.Minute)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("scheduler failed: %v", err)
	}
	defer sched.Stop()

	mux := httpapi.NewMux(httpapi.Deps{
		Searcher:    svc,
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		SetAPIKey: func(key string) error {
			if err := secrets.SetRapidAPIKey(key); err != nil {
				return err
			}
			live.SetAPIKey(key)
			return nil
		},
	})
	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Recover,
		httpapi.AccessLog,
		httpapi.Cors,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (data=%s)", addr, dataDir)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
	}()

	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
	log.Println("engine stopped")
}
