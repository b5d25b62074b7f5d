package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/interlinear/internal/tasks"
)

// TasksController handles task queue management endpoints.
type TasksController struct {
	queue          TaskQueue
	seedDir        string
	defaultVersion string
}

// NewTasksController creates a new TasksController.
func NewTasksController(queue TaskQueue, seedDir, defaultVersion string) *TasksController {
	return &TasksController{queue: queue, seedDir: seedDir, defaultVersion: defaultVersion}
}

// TaskTypeInfo describes an available task type.
type TaskTypeInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Queue       string `json:"queue"`
}

// ListTaskTypes handles GET /api/tasks/types
// Returns the list of available task types that can be triggered.
func (tc *TasksController) ListTaskTypes(c *gin.Context) {
	types := []TaskTypeInfo{
		{
			Type:        "seed_directory",
			Description: "Seed every book document in the seed directory",
			Queue:       tasks.SeedDirectoryTask{}.Config().Name,
		},
		{
			Type:        "purge_highlights",
			Description: "Permanently remove highlights deleted past the retention period",
			Queue:       tasks.PurgeHighlightsTask{}.Config().Name,
		},
		{
			Type:        "export_notes",
			Description: "Export highlights as markdown notes to the export directory",
			Queue:       tasks.ExportNotesTask{}.Config().Name,
		},
	}

	c.JSON(http.StatusOK, gin.H{
		"task_types": types,
	})
}

// GetTaskStatus handles GET /api/tasks/:id
// Returns the status of a specific task.
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	if tc.queue == nil {
		respondError(c, http.StatusServiceUnavailable, "task queue is disabled", CodeQueueDisabled)
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		respondBadRequest(c, "task ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.queue.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "task status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": taskStatusToString(status),
	})
}

// RunTaskRequest is the request body for running a task.
type RunTaskRequest struct {
	// Force re-seeds verses that already have words (seed_directory)
	Force bool `json:"force,omitempty"`
	// RetentionDays overrides the purge retention (purge_highlights)
	RetentionDays int `json:"retention_days,omitempty"`
	// Books and Version select what to export (export_notes)
	Books   []string `json:"books,omitempty"`
	Version string   `json:"version,omitempty"`
}

// RunTask handles POST /api/tasks/run/:type
// Manually triggers a task of the specified type.
func (tc *TasksController) RunTask(c *gin.Context) {
	if tc.queue == nil {
		respondError(c, http.StatusServiceUnavailable, "task queue is disabled", CodeQueueDisabled)
		return
	}

	taskType := c.Param("type")

	var req RunTaskRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
	}

	var task backlite.Task
	switch taskType {
	case "seed_directory":
		if tc.seedDir == "" {
			respondBadRequest(c, "seed directory is not configured")
			return
		}
		task = tasks.SeedDirectoryTask{Dir: tc.seedDir, Force: req.Force}

	case "purge_highlights":
		if req.RetentionDays < 0 {
			respondBadRequest(c, "retention_days must not be negative")
			return
		}
		task = tasks.PurgeHighlightsTask{RetentionDays: req.RetentionDays}

	case "export_notes":
		version := req.Version
		if version == "" {
			version = tc.defaultVersion
		}
		task = tasks.ExportNotesTask{Books: req.Books, Version: version}

	default:
		respondBadRequest(c, fmt.Sprintf("unknown task type: %s", taskType))
		return
	}

	taskID, err := tc.queue.Enqueue(task)
	if err != nil {
		respondInternalError(c, err, "enqueue "+taskType)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"task_id": taskID,
		"type":    taskType,
		"message": "task enqueued",
	})
}

func taskStatusToString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
