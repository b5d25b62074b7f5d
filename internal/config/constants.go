package config

const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./interlinear.db"

	// DefaultSeedDir holds the bundled per-book seed documents
	DefaultSeedDir = "./seed"

	// DefaultSeedVersion tags verses from documents without a version
	DefaultSeedVersion = "KJV"

	// DefaultExportDir receives markdown highlight notes
	DefaultExportDir = "./export"
)
