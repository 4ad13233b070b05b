// Package cache defines cache key construction and TTL normalisation for
// the in-process figure cache.
package cache

import (
	"strconv"
	"strings"
	"time"

	"markethealth-api/internal/config"
)

// Namespace prefixes every cache key.
const Namespace = "markethealth"

// TTLSet normalises cache TTLs from config into time.Duration values.
type TTLSet struct {
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
}

// NewTTLSet converts config TTLs (in seconds) into durations.
func NewTTLSet(cfg config.CacheTTL) TTLSet {
	return TTLSet{
		Short:  durationOrDefault(cfg.Short, 10*time.Second),
		Medium: durationOrDefault(cfg.Medium, time.Minute),
		Long:   durationOrDefault(cfg.Long, 5*time.Minute),
	}
}

func durationOrDefault(seconds int, fallback time.Duration) time.Duration {
	if seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

func formatKey(parts ...string) string {
	values := make([]string, 0, len(parts)+1)
	values = append(values, Namespace)
	for _, part := range parts {
		clean := strings.TrimSpace(part)
		if clean == "" {
			clean = "all"
		}
		values = append(values, clean)
	}
	return strings.Join(values, ":")
}

// FigureKey identifies a rendered figure for one view and date range.
// Empty bounds collapse to "all" so the full-range figure shares one entry.
func FigureKey(view, start, end string) string {
	return formatKey("figure", view, start, end)
}

// TableKey identifies a rendered table snapshot.
func TableKey(start, end string, rows int) string {
	return formatKey("table", start, end, strconv.Itoa(rows))
}
