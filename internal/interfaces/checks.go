package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/interlinear/internal/audit"
	"github.com/mrlokans/interlinear/internal/database/highlights"
	"github.com/mrlokans/interlinear/internal/database/verses"
	"github.com/mrlokans/interlinear/internal/exporters"
	"github.com/mrlokans/interlinear/internal/http"
	"github.com/mrlokans/interlinear/internal/scheduler"
	"github.com/mrlokans/interlinear/internal/seeding"
	"github.com/mrlokans/interlinear/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// VerseStore implementations
var _ http.VerseStore = (*verses.Repository)(nil)
var _ seeding.Store = (*verses.Repository)(nil)

// HighlightStore implementations
var _ http.HighlightStore = (*highlights.Repository)(nil)
var _ exporters.HighlightLister = (*highlights.Repository)(nil)

// =============================================================================
// Seeding
// =============================================================================

var _ http.DocumentSeeder = (*seeding.Seeder)(nil)
var _ tasks.DocumentSeeder = (*seeding.Seeder)(nil)
var _ scheduler.DirectorySeeder = (*seeding.Seeder)(nil)
var _ http.DocumentAuditor = (*audit.Auditor)(nil)

// =============================================================================
// Background Work
// =============================================================================

var _ http.TaskQueue = (*tasks.Client)(nil)
var _ scheduler.Enqueuer = (*tasks.Client)(nil)
var _ tasks.HighlightPurger = (*highlights.Repository)(nil)
var _ tasks.NotesExporter = (*exporters.DatabaseMarkdownExporter)(nil)
var _ tasks.BookLister = (*verses.Repository)(nil)
var _ http.SeedScanner = (*scheduler.SeedScanScheduler)(nil)
