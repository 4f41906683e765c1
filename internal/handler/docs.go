package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterDocs serves a short plain-markdown API overview at /docs.
// The full swagger spec stays at /swagger/index.html.
func RegisterDocs(r *gin.Engine) {
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/markdown; charset=utf-8")
		c.String(http.StatusOK, `# Port Planner Service

Simulates multi-year capital investment for a container terminal against a
stored demand scenario and reports the resulting cash flows and NPV.

## Routes

- GET  /healthz
- GET  /readyz
- GET  /swagger/index.html
- GET  /api/v1/scenarios
- POST /api/v1/scenarios
- GET  /api/v1/scenarios/{id}
- PUT  /api/v1/scenarios/{id}
- DELETE /api/v1/scenarios/{id}
- POST /api/v1/scenarios/{id}/run
- GET  /api/v1/scenarios/{id}/latest-run
- GET  /api/v1/runs
- GET  /api/v1/runs/{run_id}
- GET  /api/v1/runs/{run_id}/elements
- GET  /api/v1/runs/{run_id}/cashflow?discounted=true
- GET  /api/v1/runs/{run_id}/timeline
- GET  /api/v1/runs/{run_id}/stream (websocket)

## Scenarios

A scenario maps years to annual TEU volume:

    {"name": "base", "volumes": {"2020": 500000, "2021": 750000}}

Missing years count as zero demand.
`)
	})
}
