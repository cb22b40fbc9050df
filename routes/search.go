package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nextstep-career-api/internal/ai"
	"nextstep-career-api/internal/cache"
	"nextstep-career-api/internal/logger"
	"nextstep-career-api/internal/store"
	"nextstep-career-api/models"
	"nextstep-career-api/utils"
)

// fallbackTopics is served when the model reply cannot be parsed into three
// usable lists.
var fallbackTopics = models.PopularTopics{
	TrendingCareers: []string{
		"AI/Machine Learning Engineer",
		"Data Scientist",
		"Cybersecurity Specialist",
		"Product Manager",
		"UX/UI Designer",
		"Cloud Engineer",
		"Digital Marketing Specialist",
		"Software Developer",
	},
	PopularQuestions: []string{
		"How to break into tech without a CS degree?",
		"What skills do I need for data science?",
		"How to transition careers at 30+?",
		"Remote work opportunities in marketing",
		"What careers can I pursue with a psychology degree?",
		"Which degree is best for product management?",
		"How to negotiate salary?",
		"Best certifications for career growth",
	},
	IndustryInsights: []string{
		"Technology",
		"Healthcare",
		"Finance",
		"Education",
		"Manufacturing",
		"Renewable Energy",
		"E-commerce",
		"Biotechnology",
	},
}

// SetupSearchRoutes wires the endpoints that work without a stored profile:
// anonymous search, market insights and popular topics.
func SetupSearchRoutes(api *gin.RouterGroup, searches store.SearchStore, completer ai.Completer, topics cache.TopicsCache) {
	api.POST("/search", func(c *gin.Context) {
		var req models.AnonymousSearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}
		if req.SearchType == "" {
			req.SearchType = models.SearchTypeGeneral
		}

		ctx := c.Request.Context()

		answer, err := completer.Complete(ctx, ai.SearchSystem(req.SearchType), ai.SearchPrompt(req.Query))
		if err != nil {
			logger.Error("Search completion failed", "search_type", req.SearchType, "error", err)
			utils.RespondWithGatewayError(c, err)
			return
		}

		rawSuggestions, err := completer.Complete(ctx, ai.SuggestionsSystem, ai.SuggestionsPrompt(req.Query))
		if err != nil {
			logger.Error("Suggestions completion failed", "search_type", req.SearchType, "error", err)
			utils.RespondWithGatewayError(c, err)
			return
		}

		rec := &models.AnonymousSearch{
			ID:          uuid.NewString(),
			Query:       req.Query,
			SearchType:  req.SearchType,
			Response:    answer,
			Suggestions: ai.SplitSuggestions(rawSuggestions, 4),
			CreatedAt:   time.Now().UTC(),
		}

		// Analytics only. The caller already has the answer in hand, so a
		// failed insert is logged and swallowed.
		if err := searches.Insert(ctx, rec); err != nil {
			logger.Warn("Failed to record anonymous search", "error", err)
		}

		c.JSON(http.StatusOK, rec)
	})

	api.GET("/market-insights/:field", func(c *gin.Context) {
		field := c.Param("field")

		insights, err := completer.Complete(c.Request.Context(), ai.MarketInsightsSystem, ai.MarketInsightsPrompt(field))
		if err != nil {
			logger.Error("Market insights completion failed", "field", field, "error", err)
			utils.RespondWithGatewayError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.MarketInsight{
			Field:       field,
			Insights:    insights,
			GeneratedAt: time.Now().UTC(),
		})
	})

	api.GET("/popular-topics", func(c *gin.Context) {
		ctx := c.Request.Context()

		if topics != nil {
			if cached, ok := topics.Get(ctx); ok {
				c.JSON(http.StatusOK, cached)
				return
			}
		}

		raw, err := completer.Complete(ctx, ai.PopularTopicsSystem, ai.PopularTopicsPrompt())
		if err != nil {
			logger.Error("Popular topics completion failed", "error", err)
			utils.RespondWithGatewayError(c, err)
			return
		}

		snapshot, ok := ai.ParsePopularTopics(raw)
		if !ok {
			// A reply that does not parse is not a provider failure; serve
			// the curated lists instead.
			c.JSON(http.StatusOK, fallbackTopics)
			return
		}

		if topics != nil {
			topics.Set(ctx, snapshot)
		}
		c.JSON(http.StatusOK, snapshot)
	})
}
