package api

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/database"
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/models"
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/services"
	"github.com/jcotes2k/digital-growth-marketing-sub002/pkg/logging"

	"github.com/gin-gonic/gin"
)

// GenerateHandler runs one generator tool: build the prompt, call the
// AI gateway, strict-parse the reply. Upstream rate limiting and billing
// exhaustion pass through as 429 and 402.
// POST /api/generate/:tool
func GenerateHandler(c *gin.Context) {
	tool := c.Param("tool")

	userID := c.GetHeader("X-User-Id")
	if userID == "" {
		userID = c.Query("user_id")
	}

	var req services.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if !generatorService.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI gateway key not configured"})
		return
	}

	allowed, err := rateLimiter.Allow(c.Request.Context(), userID)
	if err != nil {
		logging.Errorf("Rate limiter check failed: %v", err)
		// Redis trouble should not take the generators down
		allowed = true
	}
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, slow down"})
		return
	}

	start := time.Now()
	result, usedFallback, err := generatorService.Generate(c.Request.Context(), tool, &req)
	recordUsage(tool, userID, start, usedFallback, err)

	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrUnknownTool):
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown tool: " + tool})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		case errors.Is(err, services.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "AI provider rate limit reached, try again later"})
		case errors.Is(err, services.ErrQuotaExhausted):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "AI provider billing quota exhausted"})
		default:
			// Original error stays server-side only
			logging.Errorf("Tool %s failed: %v", tool, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "generation failed, try again later"})
		}
		return
	}

	c.Data(http.StatusOK, "application/json", result)
}

// recordUsage writes one tool_usage row, errors are logged only
func recordUsage(tool, userID string, start time.Time, usedFallback bool, genErr error) {
	status := "ok"
	if usedFallback {
		status = "fallback"
	}
	if genErr != nil {
		if errors.Is(genErr, services.ErrUnknownTool) {
			return
		}
		status = "error"
	}

	usage := &models.ToolUsage{
		Tool:       tool,
		UserID:     userID,
		Status:     status,
		DurationMS: time.Since(start).Milliseconds(),
	}
	if err := database.RecordToolUsage(usage); err != nil {
		logging.Errorf("Failed to record tool usage: %v", err)
	}
}

// ListToolsHandler returns the available generator tools
// GET /api/generate/tools
func ListToolsHandler(c *gin.Context) {
	names := services.ToolNames()
	sort.Strings(names)

	tools := make([]gin.H, 0, len(names))
	for _, name := range names {
		spec := services.Tools[name]
		tools = append(tools, gin.H{
			"name":        spec.Name,
			"description": spec.Description,
			"required":    spec.Required,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tools":   tools,
	})
}
