package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/domainflow/backend/pkg/httpcontext"
	"github.com/domainflow/backend/repository/memory"
)

type HealthHandler struct {
	baseHandler
	store     *memory.Store
	startedAt time.Time
}

func NewHealthHandler(store *memory.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
		startedAt:   time.Now(),
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	payload := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
		"store":     h.store.Stats(),
	}
	h.respondSuccess(ctx, http.StatusOK, payload)
}
