// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, stats
//	├── verses/          # Verses and their interlinear words
//	└── highlights/      # Highlights anchored to verse ranges
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	db, err := database.NewDatabase("./interlinear.db")
//
//	versesRepo := verses.NewRepository(db.DB)
//	highlightsRepo := highlights.NewRepository(db.DB)
//
//	verse, err := versesRepo.FindVerse("Genesis", 1, 1, "KJV")
//
// # Interface Implementations
//
//   - verses.Repository: implements http.VerseStore and seeding.Store
//   - highlights.Repository: implements http.HighlightStore, exporters.HighlightLister
//     and tasks.HighlightPurger
//
// The checks live in internal/interfaces.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/notes/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Implement the required interface
//  5. Add compile-time interface check: var _ SomeInterface = (*Repository)(nil)
package database
