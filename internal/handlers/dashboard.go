package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikedoebber/organizer-api/internal/cache"
	apierrors "github.com/ikedoebber/organizer-api/internal/errors"
	"github.com/ikedoebber/organizer-api/internal/middleware"
	"github.com/ikedoebber/organizer-api/internal/services"
)

// DashboardHandler serves the main landing-page aggregation.
type DashboardHandler struct {
	dashboardService *services.DashboardService
	dashboardCache   *cache.DashboardCache
}

// NewDashboardHandler creates a new DashboardHandler. The cache may be
// nil, which disables caching.
func NewDashboardHandler(dashboardService *services.DashboardService, dashboardCache *cache.DashboardCache) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		dashboardCache:   dashboardCache,
	}
}

// MainDashboard returns the user's cross-entity summary. Aggregation
// failures never crash the request: XHR callers get a JSON 500, page
// callers a degraded payload.
func (h *DashboardHandler) MainDashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if h.dashboardCache != nil {
		summary, err := h.dashboardCache.GetSummary(c.Request.Context(), userID)
		if err != nil {
			log.Printf("dashboard cache read failed for user %d: %v", userID, err)
		} else if summary != nil {
			c.JSON(http.StatusOK, gin.H{
				"page_title": "Dashboard",
				"dashboard":  summary,
			})
			return
		}
	}

	summary, err := h.dashboardService.Summary(userID, time.Now())
	if err != nil {
		log.Printf("dashboard aggregation failed for user %d: %v", userID, err)
		if middleware.IsXHR(c) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar dashboard"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"page_title": "Dashboard",
				"error":      "Erro ao carregar dashboard",
			})
		}
		return
	}

	if h.dashboardCache != nil {
		if err := h.dashboardCache.SetSummary(c.Request.Context(), userID, summary); err != nil {
			log.Printf("dashboard cache write failed for user %d: %v", userID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"page_title": "Dashboard",
		"dashboard":  summary,
	})
}
