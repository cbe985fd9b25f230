package handler

import (
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/domainflow/backend/api/transport"
	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/pkg/httpcontext"
	activityUC "github.com/domainflow/backend/usecase/activity"
)

type ActivityHandler struct {
	baseHandler
	uc *activityUC.UseCase
}

func NewActivityHandler(uc *activityUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List activities newest-first
// @Tags activities
// @Router /api/activities [get]
func (h *ActivityHandler) List(ctx *fasthttp.RequestCtx) {
	userID, ok := h.userID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	// Optional foreign-key filters narrow the feed to one workflow,
	// contact or task.
	if id, ok := queryInt(ctx, "workflow_id"); ok {
		activities, err := h.uc.ListByWorkflow(stdCtx, id)
		h.respondList(ctx, activities, err)
		return
	}
	if id, ok := queryInt(ctx, "contact_id"); ok {
		activities, err := h.uc.ListByContact(stdCtx, id)
		h.respondList(ctx, activities, err)
		return
	}
	if id, ok := queryInt(ctx, "task_id"); ok {
		activities, err := h.uc.ListByTask(stdCtx, id)
		h.respondList(ctx, activities, err)
		return
	}
	activities, err := h.uc.ListByUser(stdCtx, userID)
	h.respondList(ctx, activities, err)
}

// @Summary Log an activity
// @Tags activities
// @Router /api/activities [post]
func (h *ActivityHandler) Create(ctx *fasthttp.RequestCtx) {
	userID, ok := h.userID(ctx)
	if !ok {
		return
	}

	var req transport.ActivityRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Log(stdCtx, &domain.Activity{
		UserID:       userID,
		WorkflowID:   req.WorkflowID,
		ContactID:    req.ContactID,
		TaskID:       req.TaskID,
		ActivityType: req.ActivityType,
		Description:  req.Description,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

func (h *ActivityHandler) respondList(ctx *fasthttp.RequestCtx, activities []domain.Activity, err error) {
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, activities)
}

func queryInt(ctx *fasthttp.RequestCtx, name string) (int, bool) {
	raw := string(ctx.QueryArgs().Peek(name))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}
