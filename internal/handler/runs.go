package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"portplanner/internal/models"
	"portplanner/internal/repository"
	"portplanner/internal/service"
	"portplanner/internal/terminal"
)

type RunHandler struct {
	Repo    repository.Repository
	Planner *service.PlannerService
}

func (h *RunHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1/runs")
	group.GET("", h.listRuns)
	group.GET("/:run_id", h.getRun)
	group.GET("/:run_id/elements", h.listElements)
	group.GET("/:run_id/cashflow", h.listCashFlow)
	group.GET("/:run_id/timeline", h.timeline)

	r.POST("/api/v1/scenarios/:id/run", h.runScenario)
	r.GET("/api/v1/scenarios/:id/latest-run", h.latestRun)
}

type runRequest struct {
	Overrides *service.ParamOverrides `json:"overrides"`
}

// @Summary Run a lifecycle simulation for a scenario
// @Tags runs
// @Accept json
// @Param id path int true "scenario id"
// @Param request body runRequest false "parameter overrides"
// @Success 200 {object} map[string]any
// @Router /api/v1/scenarios/{id}/run [post]
func (h *RunHandler) runScenario(c *gin.Context) {
	if h.Planner == nil {
		Error(c, http.StatusInternalServerError, "planner unavailable", nil)
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var req runRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}

	run, err := h.Planner.RunScenario(c.Request.Context(), id, req.Overrides)
	if err != nil {
		Error(c, http.StatusUnprocessableEntity, err.Error(), nil)
		return
	}
	Ok(c, run, nil)
}

// @Summary List simulation runs
// @Tags runs
// @Param scenario_id query int false "filter by scenario"
// @Param status query string false "filter by status"
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {object} map[string]any
// @Router /api/v1/runs [get]
func (h *RunHandler) listRuns(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	params := repository.ListRunsParams{
		Limit:  atoiDefault(c.Query("limit"), 100),
		Offset: atoiDefault(c.Query("offset"), 0),
	}
	if raw := strings.TrimSpace(c.Query("scenario_id")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			Error(c, http.StatusBadRequest, "invalid scenario_id", nil)
			return
		}
		params.ScenarioID = &id
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		params.Status = &status
	}

	items, err := h.Repo.ListRuns(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountRuns(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	OkList(c, items, total)
}

// @Summary Get a simulation run
// @Tags runs
// @Param run_id path string true "run id"
// @Success 200 {object} map[string]any
// @Router /api/v1/runs/{run_id} [get]
func (h *RunHandler) getRun(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	runID := strings.TrimSpace(c.Param("run_id"))
	run, err := h.Repo.GetRunByRunID(c.Request.Context(), runID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if run == nil {
		Error(c, http.StatusNotFound, "run not found", nil)
		return
	}
	Ok(c, run, nil)
}

// @Summary List the infrastructure elements a run created
// @Tags runs
// @Param run_id path string true "run id"
// @Success 200 {object} map[string]any
// @Router /api/v1/runs/{run_id}/elements [get]
func (h *RunHandler) listElements(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	runID := strings.TrimSpace(c.Param("run_id"))
	items, err := h.Repo.ListRunElements(c.Request.Context(), runID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	OkList(c, items, int64(len(items)))
}

// @Summary Get a run's cash-flow ledger
// @Tags runs
// @Param run_id path string true "run id"
// @Param discounted query bool false "discounted at the real WACC"
// @Success 200 {object} map[string]any
// @Router /api/v1/runs/{run_id}/cashflow [get]
func (h *RunHandler) listCashFlow(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	runID := strings.TrimSpace(c.Param("run_id"))
	discounted := c.Query("discounted") == "true"
	rows, err := h.Repo.ListCashFlowRows(c.Request.Context(), runID, discounted)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, rows, map[string]any{"discounted": discounted})
}

type timelineYear struct {
	Year         int                `json:"year"`
	OnlineCounts map[string]int     `json:"online_counts"`
	LandUse      map[string]float64 `json:"land_use_m2"`
	CraneCap     float64            `json:"crane_capacity_teu_hr"`
}

// @Summary Per-kind element timeline for a run
// @Tags runs
// @Param run_id path string true "run id"
// @Success 200 {object} map[string]any
// @Router /api/v1/runs/{run_id}/timeline [get]
func (h *RunHandler) timeline(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	runID := strings.TrimSpace(c.Param("run_id"))
	run, err := h.Repo.GetRunByRunID(c.Request.Context(), runID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if run == nil {
		Error(c, http.StatusNotFound, "run not found", nil)
		return
	}
	elements, err := h.Repo.ListRunElements(c.Request.Context(), runID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}

	startYear, lifecycle := runWindow(run, elements)
	Ok(c, timelineRows(startYear, lifecycle, elements), map[string]any{"run_id": runID})
}

// timelineRows aggregates persisted elements into per-year online counts,
// land use per kind and total online crane service rate.
func timelineRows(startYear, lifecycle int, elements []models.RunElement) []timelineYear {
	years := make([]timelineYear, 0, lifecycle)
	for year := startYear; year < startYear+lifecycle; year++ {
		row := timelineYear{
			Year:         year,
			OnlineCounts: map[string]int{},
			LandUse:      map[string]float64{},
		}
		for i := range elements {
			e := &elements[i]
			if year < e.YearOnline {
				continue
			}
			row.OnlineCounts[e.Kind]++
			land, _ := e.LandUse.Float64()
			row.LandUse[e.Kind] += land
			if e.Kind == string(terminal.KindCrane) {
				rate, _ := e.Capacity.Float64()
				row.CraneCap += rate
			}
		}
		years = append(years, row)
	}
	return years
}

// runWindow recovers the simulated year range from the run's stored params,
// falling back to the element year span when the snapshot is unreadable.
func runWindow(run *models.SimulationRun, elements []models.RunElement) (int, int) {
	var params struct {
		StartYear int `json:"StartYear"`
		Lifecycle int `json:"Lifecycle"`
	}
	if err := json.Unmarshal(run.Params, &params); err == nil &&
		params.StartYear > 0 && params.Lifecycle > 0 {
		return params.StartYear, params.Lifecycle
	}
	if len(elements) == 0 {
		return 0, 0
	}
	first, last := elements[0].YearOnline, elements[0].YearOnline
	for _, e := range elements[1:] {
		if e.YearOnline < first {
			first = e.YearOnline
		}
		if e.YearOnline > last {
			last = e.YearOnline
		}
	}
	return first, last - first + 1
}

// @Summary Latest finished run for a scenario
// @Tags runs
// @Param id path int true "scenario id"
// @Success 200 {object} map[string]any
// @Router /api/v1/scenarios/{id}/latest-run [get]
func (h *RunHandler) latestRun(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	run, err := h.Repo.LatestFinishedRun(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if run == nil {
		Error(c, http.StatusNotFound, "no finished run for scenario", nil)
		return
	}
	Ok(c, run, nil)
}
