package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/api/types"
)

// Get reports process liveness plus the state of the pieces a deploy
// usually breaks: the database connection and the live session count.
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  databaseStatus(deps),
		}
		if deps != nil && deps.SessionManager != nil {
			response["sessions"] = deps.SessionManager.Count()
		}

		c.JSON(http.StatusOK, response)
	}
}

func databaseStatus(deps *types.Dependencies) gin.H {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}
	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}
	return gin.H{"status": "healthy"}
}
