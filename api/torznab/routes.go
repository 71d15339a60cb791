package torznab

import (
	"github.com/gin-gonic/gin"

	"github.com/ytznab/ytznab/api/types"
)

// RegisterRoutes registers the Torznab endpoint family. Both the bare
// base path and the /api suffix are served; media managers differ in
// which one they call.
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	handler := Get(deps)
	group.GET("", handler)
	group.GET("/api", handler)
}
