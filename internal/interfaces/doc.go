// Package interfaces documents the core abstractions used throughout the application.
//
// This package consolidates interface documentation to help code agents understand
// extension points and how to implement new functionality.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - VerseStore: Verses and words, read side (internal/http/stores.go)
//   - HighlightStore: Highlight management (internal/http/stores.go)
//   - seeding.Store: Verse and word writes used by the seeder (internal/seeding/seeder.go)
//   - exporters.HighlightLister: Highlights of a book for markdown notes (internal/exporters/database_markdown.go)
//   - DocumentAuditor: Archive of uploaded seed documents (internal/http/stores.go)
//
// ## Background Work Interfaces
//
//   - TaskQueue / scheduler.Enqueuer: Enqueue backlite tasks (internal/tasks/client.go)
//   - tasks.DocumentSeeder: Seeding run by queue workers (internal/tasks/seed_document.go)
//   - tasks.HighlightPurger: Removal of soft-deleted highlights (internal/tasks/purge_highlights.go)
//   - tasks.NotesExporter / tasks.BookLister: Markdown export run by workers (internal/tasks/export_notes.go)
//   - SeedScanner: Status and manual runs of the seed scan (internal/http/config.go)
//
// # Adding a New Lookup Strategy
//
// Strategies are plain functions over a prepared lookup.Selection:
//
//	func MatchGloss(sel lookup.Selection) (entities.Word, bool) {
//	    for _, w := range sel.Words {
//	        if normalize.Normalize(w.Gloss) == sel.Key {
//	            return w, true
//	        }
//	    }
//	    return entities.Word{}, false
//	}
//
// Append it to a copy of lookup.Strategies() and call lookup.ResolveWith.
// Order matters: the first strategy that matches wins.
//
// # Adding a New Background Task
//
//  1. Define the task type with a Config() backlite.QueueConfig method in internal/tasks/
//
//  2. Write a processor taking the narrowest interface it needs:
//
//     func PurgeHighlightsProcessor(purger HighlightPurger) backlite.QueueProcessor[PurgeHighlightsTask]
//
//  3. Register the queue in entrypoint.go and, if it can be triggered by hand,
//     add it to TasksController.RunTask.
//
// # Adding a New Database Domain
//
//  1. Create sub-package: internal/database/<domain>/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Add the entity to the AutoMigrate list in database.go
//
//  4. Add compile-time check in checks.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
