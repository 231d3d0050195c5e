package cache

import (
	"github.com/crewdesk/crewdesk/internal/config"
	"github.com/crewdesk/crewdesk/internal/logger"
)

// Initialize initializes the cache system
func Initialize(cfg *config.Configuration, log *logger.Logger) *InMemoryCache {
	log.Info("Initializing cache system")

	enabled := true
	if cfg != nil {
		enabled = cfg.Cache.Enabled
	}
	globalCache = NewInMemoryCache(enabled)

	return globalCache
}
