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

// SetupAdviceRoutes wires personalized career advice and its history endpoint.
func SetupAdviceRoutes(api *gin.RouterGroup, profiles store.ProfileStore, advice store.AdviceStore, completer ai.Completer) {
	api.POST("/career-advice", func(c *gin.Context) {
		var req models.CareerAdviceRequest
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

		answer, err := completer.Complete(ctx, ai.CareerAdviceSystem, ai.CareerAdvicePrompt(profile, req.Query))
		if err != nil {
			logger.Error("Career advice completion failed", "user_id", req.UserID, "error", err)
			utils.RespondWithGatewayError(c, err)
			return
		}

		rec := &models.CareerAdvice{
			ID:        uuid.NewString(),
			UserID:    req.UserID,
			Query:     req.Query,
			Advice:    answer,
			CreatedAt: time.Now().UTC(),
		}

		if err := advice.Insert(ctx, rec); err != nil {
			logger.Error("Failed to persist career advice", "user_id", req.UserID, "error", err)
			utils.RespondWithInternalError(c, "Failed to save advice", nil)
			return
		}

		c.JSON(http.StatusOK, rec)
	})

	api.GET("/career-advice/:user_id", func(c *gin.Context) {
		list, err := advice.ListByUser(c.Request.Context(), c.Param("user_id"))
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to list advice", nil)
			return
		}

		c.JSON(http.StatusOK, list)
	})
}
