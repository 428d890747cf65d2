package httpapi

import (
	"sync/atomic"

	"github.com/narendercheckout-spec/Yelvantix/internal/config"
	"github.com/narendercheckout-spec/Yelvantix/internal/events"
	"github.com/narendercheckout-spec/Yelvantix/internal/search"
)

type Deps struct {
	Searcher *search.Service

	Hub *events.Hub

	// Atomic store for the live config snapshot
	CfgVal *atomic.Value // stores config.Config

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Secret persistence (inject for testability)
	SetAPIKey func(key string) error
}
