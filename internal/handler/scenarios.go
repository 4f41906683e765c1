package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"portplanner/internal/models"
	"portplanner/internal/repository"
)

type ScenarioHandler struct {
	Repo repository.Repository
}

func (h *ScenarioHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1/scenarios")
	group.GET("", h.listScenarios)
	group.POST("", h.createScenario)
	group.GET("/:id", h.getScenario)
	group.PUT("/:id", h.updateScenario)
	group.DELETE("/:id", h.deleteScenario)
}

type scenarioRequest struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	Volumes     map[string]float64 `json:"volumes" binding:"required"`
}

func (req *scenarioRequest) validate() string {
	if strings.TrimSpace(req.Name) == "" {
		return "name required"
	}
	if len(req.Volumes) == 0 {
		return "volumes required"
	}
	for year, vol := range req.Volumes {
		if _, err := strconv.Atoi(year); err != nil {
			return "volume year " + year + " is not a number"
		}
		if vol < 0 {
			return "volume for " + year + " is negative"
		}
	}
	return ""
}

// @Summary List demand scenarios
// @Tags scenarios
// @Param name query string false "filter by name substring"
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {object} map[string]any
// @Router /api/v1/scenarios [get]
func (h *ScenarioHandler) listScenarios(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	params := repository.ListScenariosParams{
		Limit:  atoiDefault(c.Query("limit"), 100),
		Offset: atoiDefault(c.Query("offset"), 0),
	}
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		params.Name = &name
	}
	items, err := h.Repo.ListScenarios(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountScenarios(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	OkList(c, items, total)
}

// @Summary Create a demand scenario
// @Tags scenarios
// @Accept json
// @Param scenario body scenarioRequest true "scenario"
// @Success 200 {object} map[string]any
// @Router /api/v1/scenarios [post]
func (h *ScenarioHandler) createScenario(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req scenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if msg := req.validate(); msg != "" {
		Error(c, http.StatusBadRequest, msg, nil)
		return
	}

	volumes, _ := json.Marshal(req.Volumes)
	item := &models.DemandScenario{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Volumes:     datatypes.JSON(volumes),
	}
	if err := h.Repo.CreateScenario(c.Request.Context(), item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, item, nil)
}

// @Summary Get a demand scenario
// @Tags scenarios
// @Param id path int true "scenario id"
// @Success 200 {object} map[string]any
// @Router /api/v1/scenarios/{id} [get]
func (h *ScenarioHandler) getScenario(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	item, err := h.Repo.GetScenarioByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "scenario not found", nil)
		return
	}
	Ok(c, item, nil)
}

// @Summary Update a demand scenario
// @Tags scenarios
// @Accept json
// @Param id path int true "scenario id"
// @Param scenario body scenarioRequest true "scenario"
// @Success 200 {object} map[string]any
// @Router /api/v1/scenarios/{id} [put]
func (h *ScenarioHandler) updateScenario(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	item, err := h.Repo.GetScenarioByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "scenario not found", nil)
		return
	}

	var req scenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if msg := req.validate(); msg != "" {
		Error(c, http.StatusBadRequest, msg, nil)
		return
	}

	volumes, _ := json.Marshal(req.Volumes)
	item.Name = strings.TrimSpace(req.Name)
	item.Description = req.Description
	item.Volumes = datatypes.JSON(volumes)
	if err := h.Repo.UpdateScenario(c.Request.Context(), item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, item, nil)
}

// @Summary Delete a demand scenario
// @Tags scenarios
// @Param id path int true "scenario id"
// @Success 200 {object} map[string]any
// @Router /api/v1/scenarios/{id} [delete]
func (h *ScenarioHandler) deleteScenario(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := h.Repo.DeleteScenario(c.Request.Context(), id); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"deleted": id}, nil)
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
