package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"portplanner/internal/config"
	"portplanner/internal/progress"
)

// StreamHandler streams per-year progress of a running simulation over a
// websocket. Subscribers attach by run ID before or while the run executes;
// the stream closes once the run finishes or fails.
type StreamHandler struct {
	Hub    *progress.Hub
	Cfg    config.StreamConfig
	Logger *zap.Logger
}

func (h *StreamHandler) Register(r *gin.Engine) {
	if !h.Cfg.Enabled {
		return
	}
	r.GET("/api/v1/runs/:run_id/stream", h.stream)
}

// @Summary Stream run progress over a websocket
// @Tags runs
// @Param run_id path string true "run id"
// @Success 101 {string} string "switching protocols"
// @Router /api/v1/runs/{run_id}/stream [get]
func (h *StreamHandler) stream(c *gin.Context) {
	runID := c.Param("run_id")
	if runID == "" {
		Error(c, http.StatusBadRequest, "missing run_id", nil)
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, nil)
	if err != nil {
		// Accept already wrote the HTTP error response.
		h.Logger.Warn("websocket accept failed", zap.String("run_id", runID), zap.Error(err))
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream aborted")

	events := h.Hub.Subscribe(runID, h.Cfg.BufferedEvents)
	ctx := c.Request.Context()

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusGoingAway, "client gone")
			return
		case ev, ok := <-events:
			if !ok {
				// Run finished or failed; the hub closed the stream.
				conn.Close(websocket.StatusNormalClosure, "run complete")
				return
			}
			if err := h.write(ctx, conn, ev); err != nil {
				h.Logger.Debug("websocket write failed", zap.String("run_id", runID), zap.Error(err))
				return
			}
		}
	}
}

func (h *StreamHandler) write(ctx context.Context, conn *websocket.Conn, ev progress.Event) error {
	wctx, cancel := context.WithTimeout(ctx, h.Cfg.WriteTimeout)
	defer cancel()
	return wsjson.Write(wctx, conn, ev)
}
