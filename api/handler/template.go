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

type TemplateHandler struct {
	baseHandler
	uc *workflowUC.UseCase
}

func NewTemplateHandler(uc *workflowUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TemplateHandler {
	return &TemplateHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List domain templates
// @Tags templates
// @Router /api/templates [get]
func (h *TemplateHandler) List(ctx *fasthttp.RequestCtx) {
	domainName := string(ctx.QueryArgs().Peek("domain"))
	if domainName == "" {
		domainName = "real-estate"
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	templates, err := h.uc.ListTemplates(stdCtx, domainName)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, templates)
}

// @Summary Create domain template
// @Tags templates
// @Router /api/templates [post]
func (h *TemplateHandler) Create(ctx *fasthttp.RequestCtx) {
	if _, ok := h.userID(ctx); !ok {
		return
	}

	var req transport.TemplateRequest
	if !h.decode(ctx, &req) {
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateTemplate(stdCtx, &domain.DomainTemplate{
		Name:         req.Name,
		Description:  req.Description,
		Domain:       req.Domain,
		TemplateType: req.TemplateType,
		Content:      req.Content,
		IsPublic:     isPublic,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Instantiate a workflow from a template
// @Tags templates
// @Router /api/templates/{id}/instantiate [post]
func (h *TemplateHandler) Instantiate(ctx *fasthttp.RequestCtx) {
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

	workflow, err := h.uc.InstantiateTemplate(stdCtx, id, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, workflow)
}
