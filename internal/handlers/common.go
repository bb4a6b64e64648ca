package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/ikedoebber/organizer-api/internal/cache"
)

// invalidateDashboard busts the user's cached dashboard after a write.
// Cache failures are logged and otherwise ignored; the store is the
// source of truth.
func invalidateDashboard(c *gin.Context, dc *cache.DashboardCache, userID uint64) {
	if dc == nil {
		return
	}
	if err := dc.Invalidate(c.Request.Context(), userID); err != nil {
		log.Printf("dashboard cache invalidation failed for user %d: %v", userID, err)
	}
}
