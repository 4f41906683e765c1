package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portplanner/internal/models"
)

type HealthHandler struct {
	DB *gorm.DB
}

func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", h.health)
	r.GET("/readyz", h.ready)
}

// @Summary Health check
// @Tags health
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *HealthHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "portplanner"})
}

// @Summary Readiness check
// @Description Ready once the database answers and the scenario store is queryable.
// @Tags health
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /readyz [get]
func (h *HealthHandler) ready(c *gin.Context) {
	checks := gin.H{"database": "ok", "scenario_store": "ok"}
	notReady := func(component, reason string) {
		checks[component] = reason
		if component == "database" {
			checks["scenario_store"] = "skipped"
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "checks": checks})
	}

	if h.DB == nil {
		notReady("database", "missing")
		return
	}
	sqlDB, err := h.DB.DB()
	if err != nil {
		notReady("database", "error")
		return
	}
	if err := sqlDB.Ping(); err != nil {
		notReady("database", "unreachable")
		return
	}

	// A reachable database with no scenario table means migrations have not
	// run yet; the API would 500 on its first list call.
	var ids []uint64
	if err := h.DB.Model(&models.DemandScenario{}).Limit(1).Pluck("id", &ids).Error; err != nil {
		notReady("scenario_store", "unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "checks": checks})
}
