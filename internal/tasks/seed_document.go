package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/interlinear/internal/seeding"
)

// DocumentSeeder stores seed documents. seeding.Seeder implements it.
type DocumentSeeder interface {
	SeedDocument(doc *seeding.Document, force bool) (seeding.Report, error)
	SeedDirectory(dir string, force bool) ([]seeding.Report, error)
}

// SeedDocumentTask seeds one uploaded book document.
type SeedDocumentTask struct {
	Document seeding.Document `json:"document"`
	Force    bool             `json:"force,omitempty"`
}

// Config returns the queue configuration for document seeding tasks.
func (t SeedDocumentTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "seed_document",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     5 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// SeedDocumentProcessor creates a processor function for SeedDocumentTask.
func SeedDocumentProcessor(seeder DocumentSeeder) backlite.QueueProcessor[SeedDocumentTask] {
	return func(ctx context.Context, task SeedDocumentTask) error {
		if seeder == nil {
			return fmt.Errorf("seeder not configured")
		}

		report, err := seeder.SeedDocument(&task.Document, task.Force)
		if err != nil {
			return fmt.Errorf("seed document %s: %w", task.Document.Book, err)
		}

		log.Printf("[TASK] Seeded %s", report)
		return nil
	}
}

// NewSeedDocumentQueue creates a backlite queue for document seeding tasks.
func NewSeedDocumentQueue(seeder DocumentSeeder) backlite.Queue {
	return backlite.NewQueue(SeedDocumentProcessor(seeder))
}
