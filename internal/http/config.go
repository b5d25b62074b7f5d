package http

import (
	"time"

	"github.com/mrlokans/interlinear/internal/database"
	"github.com/mrlokans/interlinear/internal/scheduler"
)

// SeedScanner exposes the periodic seed directory scan (scheduler.SeedScanScheduler).
type SeedScanner interface {
	Status() scheduler.Status
	RunNow()
}

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database   *database.Database
	Verses     VerseStore
	Highlights HighlightStore

	// Seeding
	Seeder         DocumentSeeder
	SeedDir        string
	DefaultVersion string
	Auditor        DocumentAuditor // Archives uploaded documents (optional)

	// Task queue client (optional)
	TaskQueue TaskQueue

	// Seed directory scanner (optional)
	SeedScanner SeedScanner

	// Lookup debounce window for streamed selections
	DebounceWindow time.Duration

	// Application info
	Version string
}
