package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/craveboard/backend/internal/middleware"
	"github.com/craveboard/backend/internal/service"
	"github.com/craveboard/backend/internal/types"
)

// User-facing messages. Internal detail (upstream statuses, parse errors,
// provider payloads) is logged, never returned.
const (
	msgEmptyInput  = "Please provide some food description or ingredients"
	msgRateLimited = "Rate limit exceeded. Please try again in a moment."
	msgQuota       = "AI service temporarily unavailable. Please try again."
	msgUpstream    = "Something went wrong generating recipes. Please try again."
	msgParseFailed = "Unable to generate recipes at this time. Please try again with different input."
)

// RecipeHandler relays free-text food descriptions to the model gateway
// and returns structured recipe batches.
type RecipeHandler struct {
	generator service.RecipeGenerator
	limiter   *middleware.RateLimiter
}

// NewRecipeHandler creates a new RecipeHandler instance. limiter may be nil,
// in which case generation is not rate limited.
func NewRecipeHandler(generator service.RecipeGenerator, limiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		generator: generator,
		limiter:   limiter,
	}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		if h.limiter != nil {
			recipes.POST("/generate", h.limiter.Middleware(), h.Generate)
		} else {
			recipes.POST("/generate", h.Generate)
		}
	}
}

// Generate handles one generation request end to end: validate input, build
// prompts, call the gateway, parse the reply, respond. Every failure mode
// is converted to a fixed response shape here; nothing propagates.
func (h *RecipeHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgEmptyInput})
		return
	}

	foodInput := strings.TrimSpace(req.FoodInput)
	if foodInput == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgEmptyInput})
		return
	}

	requestID, _ := c.Get(middleware.RequestIDKey)
	log.Info().
		Interface("request_id", requestID).
		Str("food_input", foodInput).
		Msg("recipe generation request")

	system, user := service.BuildPrompts(foodInput)

	rawContent, err := h.generator.Generate(c.Request.Context(), system, user)
	if err != nil {
		h.respondGatewayError(c, err)
		return
	}

	batch, err := service.ParseRecipes(rawContent)
	if err != nil {
		// Soft failure: the model answered but not in a usable shape. The
		// caller gets a well-formed empty result with a retry hint; the raw
		// content is logged for diagnosis.
		log.Error().
			Err(err).
			Str("raw_content", rawContent).
			Msg("failed to parse model output")
		c.JSON(http.StatusInternalServerError, GenerateResponse{
			Recipes: []types.Recipe{},
			Message: msgParseFailed,
		})
		return
	}

	batch.BatchID = uuid.New().String()
	c.JSON(http.StatusOK, GenerateResponse{
		BatchID: batch.BatchID,
		Recipes: batch.Recipes,
	})
}

func (h *RecipeHandler) respondGatewayError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: msgRateLimited})
	case errors.Is(err, service.ErrQuotaExceeded):
		c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: msgQuota})
	default:
		log.Error().Err(err).Msg("gateway call failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgUpstream})
	}
}
