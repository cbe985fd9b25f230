package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/domainflow/backend/api/transport"
	"github.com/domainflow/backend/internal/suggest"
	"github.com/domainflow/backend/pkg/httpcontext"
	appLogger "github.com/domainflow/backend/pkg/logger"
)

type SuggestHandler struct {
	baseHandler
	generator suggest.Generator
}

func NewSuggestHandler(generator suggest.Generator, adapter *httpcontext.Adapter, logger *zap.Logger) *SuggestHandler {
	return &SuggestHandler{
		baseHandler: newBaseHandler(adapter, logger),
		generator:   generator,
	}
}

// @Summary Suggest a workflow for a domain
// @Tags ai
// @Router /api/ai/suggest-workflow [post]
func (h *SuggestHandler) SuggestWorkflow(ctx *fasthttp.RequestCtx) {
	if _, ok := h.userID(ctx); !ok {
		return
	}

	var req transport.SuggestWorkflowRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	suggestion, err := h.generator.SuggestWorkflow(stdCtx, req.Domain, req.Description)
	if err != nil {
		appLogger.WithRequestID(stdCtx, h.logger).Error("workflow suggestion failed",
			zap.String("domain", req.Domain), zap.Error(err))
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{"workflow": suggestion})
}
