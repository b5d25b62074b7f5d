package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/interlinear/internal/audit"
	"github.com/mrlokans/interlinear/internal/config"
	"github.com/mrlokans/interlinear/internal/database"
	"github.com/mrlokans/interlinear/internal/database/highlights"
	"github.com/mrlokans/interlinear/internal/database/verses"
	"github.com/mrlokans/interlinear/internal/exporters"
	http_controllers "github.com/mrlokans/interlinear/internal/http"
	"github.com/mrlokans/interlinear/internal/scheduler"
	"github.com/mrlokans/interlinear/internal/seeding"
	"github.com/mrlokans/interlinear/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// seedOnStartup loads the seed directory once before serving. With a running
// queue the work is handed off so the server comes up immediately.
func seedOnStartup(cfg *config.Config, seeder *seeding.Seeder, taskClient *tasks.Client) {
	if !cfg.Seed.OnStartup || cfg.Seed.Dir == "" {
		return
	}
	info, err := os.Stat(cfg.Seed.Dir)
	if err != nil || !info.IsDir() {
		log.Printf("[SEED] Seed directory %s not found, skipping startup seeding", cfg.Seed.Dir)
		return
	}

	if taskClient != nil {
		id, err := taskClient.Enqueue(tasks.SeedDirectoryTask{Dir: cfg.Seed.Dir})
		if err != nil {
			log.Printf("[SEED] Failed to enqueue startup seeding: %v", err)
			return
		}
		log.Printf("[SEED] Startup seeding enqueued as task %s", id)
		return
	}

	reports, err := seeder.SeedDirectory(cfg.Seed.Dir, false)
	if err != nil {
		log.Printf("[SEED] Startup seeding finished with errors: %v", err)
	}
	log.Printf("[SEED] Startup seeding processed %d documents", len(reports))
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Interlinear v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	verseRepo := verses.NewRepository(db.DB)
	highlightRepo := highlights.NewRepository(db.DB)
	seeder := seeding.NewSeeder(verseRepo, cfg.Seed.Version)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:                cfg.Tasks.Workers,
			ReleaseAfter:           cfg.Tasks.ReleaseAfter,
			CleanupInterval:        cfg.Tasks.CleanupInterval,
			HighlightRetentionDays: cfg.Tasks.HighlightRetentionDays,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		// Register task queues
		taskClient.Register(
			tasks.NewSeedDocumentQueue(seeder),
			tasks.NewSeedDirectoryQueue(seeder),
			tasks.NewPurgeHighlightsQueue(highlightRepo),
			tasks.NewExportNotesQueue(exporters.NewDatabaseMarkdownExporter(highlightRepo, cfg.Export.Dir), verseRepo),
		)

		// Start task workers in background
		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	seedOnStartup(cfg, seeder, taskClient)

	// Seed directory scan and highlight purge share one cron scheduler
	var enqueuer scheduler.Enqueuer
	if taskClient != nil {
		enqueuer = taskClient
	}
	seedScanner := scheduler.NewSeedScanScheduler(scheduler.Config{
		Enabled:       cfg.SeedScan.Enabled,
		Dir:           cfg.Seed.Dir,
		Schedule:      cfg.SeedScan.Schedule,
		PurgeSchedule: cfg.Tasks.PurgeSchedule,
		RetentionDays: cfg.Tasks.HighlightRetentionDays,
	}, enqueuer, seeder)
	if err := seedScanner.Start(context.Background()); err != nil {
		log.Printf("WARNING: Failed to start seed scan scheduler: %v", err)
	}

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		Verses:         verseRepo,
		Highlights:     highlightRepo,
		Seeder:         seeder,
		SeedDir:        cfg.Seed.Dir,
		DefaultVersion: cfg.Seed.Version,
		DebounceWindow: cfg.Lookup.Debounce,
		Version:        version,
	}
	if taskClient != nil {
		routerCfg.TaskQueue = taskClient
	}
	// Archive uploaded seed documents when an audit directory is configured
	if cfg.Audit.Dir != "" {
		routerCfg.Auditor = audit.NewAuditor(cfg.Audit.Dir)
	}
	if seedScanner.IsRunning() {
		routerCfg.SeedScanner = seedScanner
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		seedScanner.Stop()
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
