package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/interlinear/internal/lookup"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)

	api := router.Group("/api")

	// Verses and lookup
	if cfg.Verses != nil {
		versesController := NewVersesController(cfg.Verses, cfg.DefaultVersion)
		lookupController := NewLookupController(cfg.Verses, lookup.NewDebounceGroup(cfg.DebounceWindow))
		wordsController := NewWordsController(cfg.Verses)

		api.GET("/books", versesController.ListBooks)
		api.GET("/verses", versesController.ListChapter)
		api.GET("/verses/find", versesController.FindVerse)
		api.GET("/verses/:id", versesController.GetVerse)
		api.POST("/verses/:id/resolve", lookupController.Resolve)
		api.POST("/verses/:id/selection", lookupController.ResolveSelection)

		api.GET("/words", wordsController.FindByStrongs)
		api.GET("/words/:id", wordsController.GetWord)
		api.GET("/words/:id/morphology", wordsController.GetWordMorphology)
		api.GET("/morphology", wordsController.ParseTag)

		// Highlights resolve their range against the verse's words
		if cfg.Highlights != nil {
			highlightsController := NewHighlightsController(cfg.Verses, cfg.Highlights)
			api.GET("/verses/:id/highlights", highlightsController.ListByVerse)
			api.POST("/highlights", highlightsController.Create)
			api.GET("/highlights/:id", highlightsController.Get)
			api.PATCH("/highlights/:id", highlightsController.Update)
			api.DELETE("/highlights/:id", highlightsController.Delete)

			exportController := NewExportController(cfg.Highlights, cfg.DefaultVersion)
			api.GET("/export/markdown", exportController.Markdown)
		}
	}

	// Seeding
	seedController := NewSeedController(cfg.Seeder, cfg.TaskQueue, cfg.Auditor)
	api.POST("/seed", seedController.SeedDocument)

	// Task queue endpoints
	tasksController := NewTasksController(cfg.TaskQueue, cfg.SeedDir, cfg.DefaultVersion)
	api.GET("/tasks/types", tasksController.ListTaskTypes)
	api.GET("/tasks/:id", tasksController.GetTaskStatus)
	api.POST("/tasks/run/:type", tasksController.RunTask)

	// Seed directory scan
	schedulerController := NewSchedulerController(cfg.SeedScanner)
	api.GET("/scheduler/seed-scan", schedulerController.Status)
	api.POST("/scheduler/seed-scan/run", schedulerController.RunNow)

	return router
}
