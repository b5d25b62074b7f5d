package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// HighlightPurger permanently removes soft-deleted highlights.
type HighlightPurger interface {
	PurgeDeleted(retention time.Duration) (int64, error)
}

// PurgeHighlightsTask removes highlights deleted longer ago than the
// retention period.
type PurgeHighlightsTask struct {
	RetentionDays int `json:"retention_days"`
}

// Config returns the queue configuration for highlight purge tasks.
func (t PurgeHighlightsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "purge_highlights",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// PurgeHighlightsProcessor creates a processor function for PurgeHighlightsTask.
func PurgeHighlightsProcessor(purger HighlightPurger) backlite.QueueProcessor[PurgeHighlightsTask] {
	return func(ctx context.Context, task PurgeHighlightsTask) error {
		if purger == nil {
			return fmt.Errorf("highlight purger not configured")
		}

		retentionDays := task.RetentionDays
		if retentionDays <= 0 {
			retentionDays = 30
		}
		retention := time.Duration(retentionDays) * 24 * time.Hour

		purged, err := purger.PurgeDeleted(retention)
		if err != nil {
			return fmt.Errorf("purge highlights: %w", err)
		}

		log.Printf("[TASK] Purged %d highlights deleted more than %d days ago", purged, retentionDays)
		return nil
	}
}

// NewPurgeHighlightsQueue creates a backlite queue for highlight purge tasks.
func NewPurgeHighlightsQueue(purger HighlightPurger) backlite.Queue {
	return backlite.NewQueue(PurgeHighlightsProcessor(purger))
}
