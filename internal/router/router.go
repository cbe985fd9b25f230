package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/domainflow/backend/api/handler"
)

type Handlers struct {
	Auth     *apiHandler.AuthHandler
	Contact  *apiHandler.ContactHandler
	Workflow *apiHandler.WorkflowHandler
	Agent    *apiHandler.AgentHandler
	Task     *apiHandler.TaskHandler
	Activity *apiHandler.ActivityHandler
	Template *apiHandler.TemplateHandler
	Suggest  *apiHandler.SuggestHandler
	Health   *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/auth/login", handlers.Auth.Login)
	r.GET("/api/auth/session", authMiddleware(handlers.Auth.Session))

	// Template listing is public; everything else requires a session.
	r.GET("/api/templates", handlers.Template.List)
	r.POST("/api/templates", authMiddleware(handlers.Template.Create))
	r.POST("/api/templates/{id}/instantiate", authMiddleware(handlers.Template.Instantiate))

	r.GET("/api/contacts", authMiddleware(handlers.Contact.List))
	r.POST("/api/contacts", authMiddleware(handlers.Contact.Create))
	r.GET("/api/contacts/{id}", authMiddleware(handlers.Contact.Get))
	r.PATCH("/api/contacts/{id}", authMiddleware(handlers.Contact.Update))
	r.DELETE("/api/contacts/{id}", authMiddleware(handlers.Contact.Delete))

	r.GET("/api/workflows", authMiddleware(handlers.Workflow.List))
	r.POST("/api/workflows", authMiddleware(handlers.Workflow.Create))
	r.GET("/api/workflows/{id}", authMiddleware(handlers.Workflow.Get))
	r.PATCH("/api/workflows/{id}", authMiddleware(handlers.Workflow.Update))
	r.DELETE("/api/workflows/{id}", authMiddleware(handlers.Workflow.Delete))
	r.GET("/api/workflows/{id}/steps", authMiddleware(handlers.Workflow.ListSteps))
	r.POST("/api/workflows/{id}/steps", authMiddleware(handlers.Workflow.AddStep))
	r.PATCH("/api/steps/{id}", authMiddleware(handlers.Workflow.UpdateStep))
	r.DELETE("/api/steps/{id}", authMiddleware(handlers.Workflow.DeleteStep))

	r.GET("/api/agents", authMiddleware(handlers.Agent.List))
	r.POST("/api/agents", authMiddleware(handlers.Agent.Create))
	r.GET("/api/agents/{id}", authMiddleware(handlers.Agent.Get))
	r.PATCH("/api/agents/{id}", authMiddleware(handlers.Agent.Update))
	r.DELETE("/api/agents/{id}", authMiddleware(handlers.Agent.Delete))

	r.GET("/api/tasks", authMiddleware(handlers.Task.List))
	r.POST("/api/tasks", authMiddleware(handlers.Task.Create))
	r.GET("/api/tasks/{id}", authMiddleware(handlers.Task.Get))
	r.PATCH("/api/tasks/{id}", authMiddleware(handlers.Task.Update))
	r.DELETE("/api/tasks/{id}", authMiddleware(handlers.Task.Delete))

	r.GET("/api/activities", authMiddleware(handlers.Activity.List))
	r.POST("/api/activities", authMiddleware(handlers.Activity.Create))

	r.POST("/api/ai/suggest-workflow", authMiddleware(handlers.Suggest.SuggestWorkflow))

	return r
}
