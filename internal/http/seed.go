package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/interlinear/internal/seeding"
	"github.com/mrlokans/interlinear/internal/tasks"
)

// SeedController accepts book documents for seeding. Documents are queued
// when a task client runs, and seeded within the request otherwise.
type SeedController struct {
	seeder  DocumentSeeder
	queue   TaskQueue
	auditor DocumentAuditor
}

func NewSeedController(seeder DocumentSeeder, queue TaskQueue, auditor DocumentAuditor) *SeedController {
	return &SeedController{seeder: seeder, queue: queue, auditor: auditor}
}

func parseForce(c *gin.Context) bool {
	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))
	return force
}

// SeedDocument handles POST /api/seed?force=
func (sc *SeedController) SeedDocument(c *gin.Context) {
	doc, err := seeding.ParseDocument(c.Request.Body)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	force := parseForce(c)

	if sc.auditor != nil {
		if _, err := sc.auditor.SaveDocument(doc); err != nil {
			// Log but don't fail the request
			log.Printf("Failed to archive seed document %s: %v", doc.Book, err)
			c.Writer.Header().Set("X-Audit-Warning", "Failed to save audit log")
		}
	}

	if sc.queue != nil {
		taskID, err := sc.queue.Enqueue(tasks.SeedDocumentTask{Document: *doc, Force: force})
		if err != nil {
			respondInternalError(c, err, "enqueue seed document")
			return
		}
		respondAccepted(c, "seed document enqueued", gin.H{"task_id": taskID, "book": doc.Book})
		return
	}

	if sc.seeder == nil {
		respondError(c, http.StatusServiceUnavailable, "seeding is not configured", CodeQueueDisabled)
		return
	}
	report, err := sc.seeder.SeedDocument(doc, force)
	if err != nil {
		respondInternalError(c, err, "seed document")
		return
	}
	c.JSON(http.StatusOK, report)
}
