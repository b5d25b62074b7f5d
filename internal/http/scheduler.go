package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/interlinear/internal/scheduler"
)

// SchedulerController reports on and triggers the seed directory scan.
type SchedulerController struct {
	scanner SeedScanner
}

func NewSchedulerController(scanner SeedScanner) *SchedulerController {
	return &SchedulerController{scanner: scanner}
}

// SeedScanStatusResponse adds a readable schedule to the scanner status.
type SeedScanStatusResponse struct {
	scheduler.Status
	Description string `json:"description,omitempty"`
}

// Status handles GET /api/scheduler/seed-scan
func (sc *SchedulerController) Status(c *gin.Context) {
	if sc.scanner == nil {
		c.JSON(http.StatusOK, gin.H{"running": false})
		return
	}

	status := sc.scanner.Status()
	resp := SeedScanStatusResponse{Status: status}
	if status.Schedule != "" {
		resp.Description = scheduler.GetCronDescription(status.Schedule)
	}
	c.JSON(http.StatusOK, resp)
}

// RunNow handles POST /api/scheduler/seed-scan/run
func (sc *SchedulerController) RunNow(c *gin.Context) {
	if sc.scanner == nil {
		respondError(c, http.StatusServiceUnavailable, "seed scan is disabled", "scan_disabled")
		return
	}
	sc.scanner.RunNow()
	respondAccepted(c, "seed scan started", nil)
}
