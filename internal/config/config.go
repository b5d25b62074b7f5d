package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Seed
		SeedScan
		Lookup
		Tasks
		Audit
		Export
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Seed struct {
		Dir       string // Directory of per-book JSON documents
		Version   string // Translation tag for documents that carry none
		OnStartup bool
	}
	SeedScan struct {
		Enabled  bool
		Schedule string // Cron format: "*/15 * * * *" = every 15 minutes
	}
	Lookup struct {
		Debounce time.Duration // Window applied to streamed selections (default: 400ms)
	}
	Tasks struct {
		Enabled                bool
		Workers                int
		ReleaseAfter           time.Duration
		CleanupInterval        time.Duration
		PurgeSchedule          string // Cron format, empty disables the highlight purge
		HighlightRetentionDays int
	}
	Audit struct {
		Dir string // Uploaded seed documents are archived here, empty disables
	}
	Export struct {
		Dir string // Markdown notes directory, e.g. inside an Obsidian vault
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Seeding defaults
	v.SetDefault("seed_dir", DefaultSeedDir)
	v.SetDefault("seed_version", DefaultSeedVersion)
	v.SetDefault("seed_on_startup", true)
	v.SetDefault("seed_scan_enabled", false)
	v.SetDefault("seed_scan_schedule", "*/15 * * * *")

	v.SetDefault("lookup_debounce", "400ms")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("highlight_purge_schedule", "0 3 * * *") // Daily at 03:00
	v.SetDefault("highlight_retention_days", 30)

	v.SetDefault("audit_dir", "") // Disabled unless set
	v.SetDefault("export_dir", DefaultExportDir)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Seed: Seed{
			Dir:       v.GetString("SEED_DIR"),
			Version:   v.GetString("SEED_VERSION"),
			OnStartup: v.GetBool("SEED_ON_STARTUP"),
		},
		SeedScan: SeedScan{
			Enabled:  v.GetBool("SEED_SCAN_ENABLED"),
			Schedule: v.GetString("SEED_SCAN_SCHEDULE"),
		},
		Lookup: Lookup{
			Debounce: v.GetDuration("LOOKUP_DEBOUNCE"),
		},
		Tasks: Tasks{
			Enabled:                v.GetBool("TASKS_ENABLED"),
			Workers:                v.GetInt("TASK_WORKERS"),
			ReleaseAfter:           v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:        v.GetDuration("TASK_CLEANUP_INTERVAL"),
			PurgeSchedule:          v.GetString("HIGHLIGHT_PURGE_SCHEDULE"),
			HighlightRetentionDays: v.GetInt("HIGHLIGHT_RETENTION_DAYS"),
		},
		Audit: Audit{
			Dir: v.GetString("AUDIT_DIR"),
		},
		Export: Export{
			Dir: v.GetString("EXPORT_DIR"),
		},
	}
}
