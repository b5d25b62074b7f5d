package tasks

import "time"

// Config holds configuration for the task queue system.
type Config struct {
	// Workers is the number of concurrent task workers. Default: 2
	Workers int

	// ReleaseAfter is when stuck tasks are released back to queue. Default: 15m
	ReleaseAfter time.Duration

	// CleanupInterval is how often to clean up completed tasks. Default: 1h
	CleanupInterval time.Duration

	// HighlightRetentionDays is how long soft-deleted highlights are kept
	// before a purge task removes them. Default: 30
	HighlightRetentionDays int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers:                2,
		ReleaseAfter:           15 * time.Minute,
		CleanupInterval:        1 * time.Hour,
		HighlightRetentionDays: 30,
	}
}
