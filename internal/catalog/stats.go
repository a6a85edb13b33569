package catalog

import (
	"context"
	"time"

	"photo-viewer/internal/logging"
)

// Stats holds the current catalog counts.
type Stats struct {
	TotalAssets    int
	TotalFallbacks int
}

// StatsSource reads catalog counts for the health endpoint and the periodic
// metrics collector.
type StatsSource struct {
	catalog *Catalog
}

// NewStatsSource creates a stats provider backed by the catalog.
func NewStatsSource(c *Catalog) *StatsSource {
	return &StatsSource{catalog: c}
}

// GetStats returns current catalog counts. Errors are logged and reported as
// zero counts; a failed stats read must never take down the collector.
func (s *StatsSource) GetStats() Stats {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	s.catalog.mu.RLock()
	defer s.catalog.mu.RUnlock()

	var stats Stats
	start := time.Now()

	if err := s.catalog.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COUNT(fallback_ref) FROM assets").
		Scan(&stats.TotalAssets, &stats.TotalFallbacks); err != nil {
		logging.Warn("Failed to read catalog stats: %v", err)
		return Stats{}
	}

	logging.Debug("Catalog stats read in %v: %d assets, %d fallbacks",
		time.Since(start).Round(time.Microsecond), stats.TotalAssets, stats.TotalFallbacks)
	return stats
}
