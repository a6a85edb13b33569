package metrics

import (
	"time"

	"photo-viewer/internal/catalog"
	"photo-viewer/internal/logging"
)

// StatsProvider interface for collecting catalog stats
type StatsProvider interface {
	GetStats() catalog.Stats
}

// Collector periodically collects and updates catalog metrics
type Collector struct {
	statsProvider StatsProvider
	interval      time.Duration
	stopChan      chan struct{}
}

// NewCollector creates a new metrics collector
func NewCollector(provider StatsProvider, interval time.Duration) *Collector {
	return &Collector{
		statsProvider: provider,
		interval:      interval,
		stopChan:      make(chan struct{}),
	}
}

// Start begins the metrics collection loop
func (c *Collector) Start() {
	go c.collectLoop()
}

// Stop stops the metrics collection
func (c *Collector) Stop() {
	close(c.stopChan)
}

func (c *Collector) collectLoop() {
	// Collect immediately on start
	c.collect()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Collector) collect() {
	if c.statsProvider == nil {
		return
	}

	stats := c.statsProvider.GetStats()

	CatalogAssetsTotal.Set(float64(stats.TotalAssets))
	CatalogFallbacksTotal.Set(float64(stats.TotalFallbacks))

	logging.Debug("Metrics collected: assets=%d, fallbacks=%d",
		stats.TotalAssets, stats.TotalFallbacks)
}
