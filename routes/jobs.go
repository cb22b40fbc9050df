package routes

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"nextstep-career-api/internal/crawler"
	"nextstep-career-api/internal/logger"
	"nextstep-career-api/internal/queue"
	"nextstep-career-api/internal/store"
	"nextstep-career-api/models"
	"nextstep-career-api/utils"
)

// Enqueuer is the slice of asynq.Client the handlers need.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// SetupJobRoutes wires the scraped-listings search and the on-demand refresh.
func SetupJobRoutes(api *gin.RouterGroup, jobs store.JobStore, enqueuer Enqueuer) {
	api.GET("/jobs", func(c *gin.Context) {
		limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)

		list, err := jobs.Search(c.Request.Context(), c.Query("query"), c.Query("location"), limit)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to search job postings", nil)
			return
		}

		c.JSON(http.StatusOK, list)
	})

	api.POST("/jobs/refresh", func(c *gin.Context) {
		var req models.ScrapeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}

		if _, ok := crawler.LookupSource(req.Source); !ok {
			utils.RespondWithBadRequest(c, "Unknown scrape source", gin.H{"source": req.Source})
			return
		}

		task, err := queue.NewScrapeJobsTask(req.Source, req.Query, req.Location, req.Limit)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to build scrape task", nil)
			return
		}

		info, err := enqueuer.EnqueueContext(c.Request.Context(), task)
		if err != nil {
			logger.Error("Failed to enqueue scrape task", "source", req.Source, "error", err)
			utils.RespondWithInternalError(c, "Failed to schedule scrape", nil)
			return
		}

		c.JSON(http.StatusAccepted, gin.H{
			"task_id": info.ID,
			"queue":   info.Queue,
			"source":  req.Source,
		})
	})
}
