package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/domainflow/backend/api/transport"
	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/pkg/httpcontext"
	agentUC "github.com/domainflow/backend/usecase/agent"
)

type AgentHandler struct {
	baseHandler
	uc *agentUC.UseCase
}

func NewAgentHandler(uc *agentUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AgentHandler {
	return &AgentHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List AI agents
// @Tags agents
// @Router /api/agents [get]
func (h *AgentHandler) List(ctx *fasthttp.RequestCtx) {
	userID, ok := h.userID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	agents, err := h.uc.ListAgents(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, agents)
}

// @Summary Get AI agent
// @Tags agents
// @Router /api/agents/{id} [get]
func (h *AgentHandler) Get(ctx *fasthttp.RequestCtx) {
	userID, ok := h.userID(ctx)
	if !ok {
		return
	}
	id, ok := h.pathInt(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	agent, err := h.uc.GetAgent(stdCtx, id, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, agent)
}

// @Summary Create AI agent
// @Tags agents
// @Router /api/agents [post]
func (h *AgentHandler) Create(ctx *fasthttp.RequestCtx) {
	userID, ok := h.userID(ctx)
	if !ok {
		return
	}

	var req transport.AgentRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateAgent(stdCtx, &domain.AiAgent{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		AgentType:   req.AgentType,
		Config:      req.Config,
		Status:      req.Status,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update AI agent
// @Tags agents
// @Router /api/agents/{id} [patch]
func (h *AgentHandler) Update(ctx *fasthttp.RequestCtx) {
	userID, ok := h.userID(ctx)
	if !ok {
		return
	}
	id, ok := h.pathInt(ctx, "id")
	if !ok {
		return
	}

	var req transport.AgentUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateAgent(stdCtx, id, userID, domain.AiAgentPatch{
		Name:        req.Name,
		Description: req.Description,
		AgentType:   req.AgentType,
		Config:      req.Config,
		Status:      req.Status,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete AI agent
// @Tags agents
// @Router /api/agents/{id} [delete]
func (h *AgentHandler) Delete(ctx *fasthttp.RequestCtx) {
	userID, ok := h.userID(ctx)
	if !ok {
		return
	}
	id, ok := h.pathInt(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteAgent(stdCtx, id, userID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}
