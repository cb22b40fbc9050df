package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nextstep-career-api/internal/ai"
	"nextstep-career-api/internal/logger"
	"nextstep-career-api/internal/store"
	"nextstep-career-api/models"
	"nextstep-career-api/utils"
)

// SetupAnalysisRoutes wires job analysis and its history endpoint.
func SetupAnalysisRoutes(api *gin.RouterGroup, profiles store.ProfileStore, analyses store.AnalysisStore, completer ai.Completer) {
	api.POST("/analyze-job", func(c *gin.Context) {
		var req models.JobAnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()

		profile, err := profiles.Get(ctx, req.UserID)
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithNotFound(c, "User profile not found")
			return
		}
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to load profile", nil)
			return
		}

		rawAnalysis, err := completer.Complete(ctx, ai.JobAnalysisSystem, ai.JobAnalysisPrompt(profile, req.JobDescription))
		if err != nil {
			logger.Error("Job analysis completion failed", "user_id", req.UserID, "error", err)
			utils.RespondWithGatewayError(c, err)
			return
		}

		analysis := ai.ParseAnalysis(rawAnalysis)

		rawRecs, err := completer.Complete(ctx, ai.RecommendationsSystem, ai.RecommendationsPrompt(profile, rawAnalysis))
		if err != nil {
			logger.Error("Recommendations completion failed", "user_id", req.UserID, "error", err)
			utils.RespondWithGatewayError(c, err)
			return
		}

		rec := &models.JobAnalysis{
			ID:              uuid.NewString(),
			UserID:          req.UserID,
			JobDescription:  req.JobDescription,
			Analysis:        analysis,
			Recommendations: ai.SplitRecommendations(rawRecs),
			MatchScore:      ai.ExtractMatchScore(analysis),
			CreatedAt:       time.Now().UTC(),
		}

		if err := analyses.Insert(ctx, rec); err != nil {
			logger.Error("Failed to persist job analysis", "user_id", req.UserID, "error", err)
			utils.RespondWithInternalError(c, "Failed to save analysis", nil)
			return
		}

		c.JSON(http.StatusOK, rec)
	})

	api.GET("/job-analyses/:user_id", func(c *gin.Context) {
		list, err := analyses.ListByUser(c.Request.Context(), c.Param("user_id"))
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to list analyses", nil)
			return
		}

		c.JSON(http.StatusOK, list)
	})
}
