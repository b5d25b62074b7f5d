package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// SeedDirectoryTask seeds every document of a directory. Already seeded
// verses are skipped, so rescans are cheap.
type SeedDirectoryTask struct {
	Dir   string `json:"dir"`
	Force bool   `json:"force,omitempty"`
}

// Config returns the queue configuration for directory seeding tasks.
func (t SeedDirectoryTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "seed_directory",
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     30 * time.Minute, // Whole-canon directories take a while
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// SeedDirectoryProcessor creates a processor function for SeedDirectoryTask.
func SeedDirectoryProcessor(seeder DocumentSeeder) backlite.QueueProcessor[SeedDirectoryTask] {
	return func(ctx context.Context, task SeedDirectoryTask) error {
		if seeder == nil {
			return fmt.Errorf("seeder not configured")
		}
		if task.Dir == "" {
			return fmt.Errorf("seed directory not set")
		}

		reports, err := seeder.SeedDirectory(task.Dir, task.Force)

		words := 0
		for _, r := range reports {
			words += r.WordsInserted
		}
		log.Printf("[TASK] Seed directory %s: %d documents, %d words inserted", task.Dir, len(reports), words)

		if err != nil {
			return fmt.Errorf("seed directory %s: %w", task.Dir, err)
		}
		return nil
	}
}

// NewSeedDirectoryQueue creates a backlite queue for directory seeding tasks.
func NewSeedDirectoryQueue(seeder DocumentSeeder) backlite.Queue {
	return backlite.NewQueue(SeedDirectoryProcessor(seeder))
}
