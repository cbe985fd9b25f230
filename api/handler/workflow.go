package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/domainflow/backend/api/transport"
	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/pkg/httpcontext"
	workflowUC "github.com/domainflow/backend/usecase/workflow"
)

type WorkflowHandler struct {
	baseHandler
	uc *workflowUC.UseCase
}

func NewWorkflowHandler(uc *workflowUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *WorkflowHandler {
	return &WorkflowHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List workflows
// @Tags workflows
// @Router /api/workflows [get]
func (h *WorkflowHandler) List(ctx *fasthttp.RequestCtx) {
	userID, ok := h.userID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	workflows, err := h.uc.ListWorkflows(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, workflows)
}

// @Summary Get workflow
// @Tags workflows
// @Router /api/workflows/{id} [get]
func (h *WorkflowHandler) Get(ctx *fasthttp.RequestCtx) {
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

	workflow, err := h.uc.GetWorkflow(stdCtx, id, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, workflow)
}

// @Summary Create workflow
// @Tags workflows
// @Router /api/workflows [post]
func (h *WorkflowHandler) Create(ctx *fasthttp.RequestCtx) {
	userID, ok := h.userID(ctx)
	if !ok {
		return
	}

	var req transport.WorkflowRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateWorkflow(stdCtx, &domain.Workflow{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Domain:      req.Domain,
		Status:      req.Status,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update workflow
// @Tags workflows
// @Router /api/workflows/{id} [patch]
func (h *WorkflowHandler) Update(ctx *fasthttp.RequestCtx) {
	userID, ok := h.userID(ctx)
	if !ok {
		return
	}
	id, ok := h.pathInt(ctx, "id")
	if !ok {
		return
	}

	var req transport.WorkflowUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateWorkflow(stdCtx, id, userID, domain.WorkflowPatch{
		Name:        req.Name,
		Description: req.Description,
		Domain:      req.Domain,
		Status:      req.Status,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete workflow and its steps
// @Tags workflows
// @Router /api/workflows/{id} [delete]
func (h *WorkflowHandler) Delete(ctx *fasthttp.RequestCtx) {
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

	if err := h.uc.DeleteWorkflow(stdCtx, id, userID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary List workflow steps in order
// @Tags workflows
// @Router /api/workflows/{id}/steps [get]
func (h *WorkflowHandler) ListSteps(ctx *fasthttp.RequestCtx) {
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

	steps, err := h.uc.ListSteps(stdCtx, id, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, steps)
}

// @Summary Add workflow step
// @Tags workflows
// @Router /api/workflows/{id}/steps [post]
func (h *WorkflowHandler) AddStep(ctx *fasthttp.RequestCtx) {
	userID, ok := h.userID(ctx)
	if !ok {
		return
	}
	id, ok := h.pathInt(ctx, "id")
	if !ok {
		return
	}

	var req transport.WorkflowStepRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.AddStep(stdCtx, userID, &domain.WorkflowStep{
		WorkflowID:  id,
		Name:        req.Name,
		Description: req.Description,
		StepType:    req.StepType,
		Order:       req.Order,
		Config:      req.Config,
		Status:      req.Status,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update workflow step
// @Tags workflows
// @Router /api/steps/{id} [patch]
func (h *WorkflowHandler) UpdateStep(ctx *fasthttp.RequestCtx) {
	userID, ok := h.userID(ctx)
	if !ok {
		return
	}
	id, ok := h.pathInt(ctx, "id")
	if !ok {
		return
	}

	var req transport.WorkflowStepUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateStep(stdCtx, id, userID, domain.WorkflowStepPatch{
		Name:        req.Name,
		Description: req.Description,
		StepType:    req.StepType,
		Order:       req.Order,
		Config:      req.Config,
		Status:      req.Status,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete workflow step
// @Tags workflows
// @Router /api/steps/{id} [delete]
func (h *WorkflowHandler) DeleteStep(ctx *fasthttp.RequestCtx) {
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

	if err := h.uc.DeleteStep(stdCtx, id, userID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}
