package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nextstep-career-api/internal/store"
	"nextstep-career-api/models"
	"nextstep-career-api/utils"
)

// SetupProfileRoutes wires the profile CRUD endpoints.
func SetupProfileRoutes(api *gin.RouterGroup, profiles store.ProfileStore) {
	api.POST("/profiles", func(c *gin.Context) {
		var req models.ProfileCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}

		profile, err := profiles.Create(c.Request.Context(), req)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to save profile", nil)
			return
		}

		c.JSON(http.StatusOK, profile)
	})

	api.GET("/profiles", func(c *gin.Context) {
		list, err := profiles.List(c.Request.Context())
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to list profiles", nil)
			return
		}

		c.JSON(http.StatusOK, list)
	})

	api.GET("/profiles/:user_id", func(c *gin.Context) {
		profile, err := profiles.Get(c.Request.Context(), c.Param("user_id"))
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithNotFound(c, "Profile not found")
			return
		}
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to load profile", nil)
			return
		}

		c.JSON(http.StatusOK, profile)
	})

	api.PUT("/profiles/:user_id", func(c *gin.Context) {
		var req models.ProfileCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}

		profile, err := profiles.Update(c.Request.Context(), c.Param("user_id"), req)
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithNotFound(c, "Profile not found")
			return
		}
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to update profile", nil)
			return
		}

		c.JSON(http.StatusOK, profile)
	})
}
