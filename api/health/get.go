package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ytznab/ytznab/api/types"
)

// Get handles health check requests
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		// Report whether the search tool is reachable
		if deps != nil && deps.Tool != nil {
			response["ytdlp"] = getToolStatus(deps)
		} else {
			response["ytdlp"] = gin.H{"status": "not configured"}
		}

		c.JSON(http.StatusOK, response)
	}
}

// getToolStatus checks that the search binary resolves on PATH
func getToolStatus(deps *types.Dependencies) gin.H {
	if err := deps.Tool.ValidateBinary(); err != nil {
		return gin.H{"status": "unavailable", "error": err.Error()}
	}
	return gin.H{"status": "available"}
}
