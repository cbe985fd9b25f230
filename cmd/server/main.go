package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/domainflow/backend/api/handler"
	"github.com/domainflow/backend/internal/bootstrap"
	"github.com/domainflow/backend/internal/config"
	"github.com/domainflow/backend/internal/middleware"
	"github.com/domainflow/backend/internal/router"
	"github.com/domainflow/backend/internal/lifecycle"
	"github.com/domainflow/backend/internal/suggest"
	"github.com/domainflow/backend/pkg/httpcontext"
	"github.com/domainflow/backend/pkg/logger"
	"github.com/domainflow/backend/repository/memory"
	activityUC "github.com/domainflow/backend/usecase/activity"
	agentUC "github.com/domainflow/backend/usecase/agent"
	authUC "github.com/domainflow/backend/usecase/auth"
	contactUC "github.com/domainflow/backend/usecase/contact"
	taskUC "github.com/domainflow/backend/usecase/task"
	workflowUC "github.com/domainflow/backend/usecase/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)

	store := memory.NewStore()

	userRepo := memory.NewUserRepository(store)
	contactRepo := memory.NewContactRepository(store)
	workflowRepo := memory.NewWorkflowRepository(store)
	stepRepo := memory.NewWorkflowStepRepository(store)
	agentRepo := memory.NewAgentRepository(store)
	taskRepo := memory.NewTaskRepository(store)
	activityRepo := memory.NewActivityRepository(store)
	templateRepo := memory.NewTemplateRepository(store)

	recorder := activityUC.NewRecorder(activityRepo, zapLogger)

	authUseCase := authUC.New(userRepo, cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.SessionTTL, zapLogger)
	contactUseCase := contactUC.New(contactRepo, taskRepo, recorder, zapLogger)
	workflowUseCase := workflowUC.New(workflowRepo, stepRepo, taskRepo, templateRepo, recorder, zapLogger)
	agentUseCase := agentUC.New(agentRepo, recorder, zapLogger)
	taskUseCase := taskUC.New(taskRepo, recorder, zapLogger)
	activityUseCase := activityUC.New(activityRepo, zapLogger)

	var generator suggest.Generator = suggest.Static{}
	if cfg.OpenAI.APIKey != "" {
		generator = suggest.NewClient(suggest.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
			Timeout: cfg.OpenAI.Timeout,
		})
		zapLogger.Info("workflow suggestions use OpenAI", zap.String("model", cfg.OpenAI.Model))
	} else {
		zapLogger.Info("OPENAI_API_KEY not set, workflow suggestions use static fallback")
	}

	if cfg.Demo.Enabled {
		seeder := bootstrap.NewSeeder(bootstrap.Repositories{
			Users:     userRepo,
			Contacts:  contactRepo,
			Workflows: workflowRepo,
			Steps:     stepRepo,
			Agents:    agentRepo,
			Tasks:     taskRepo,
			Activity:  activityRepo,
			Templates: templateRepo,
		}, zapLogger)
		if err := seeder.Run(manager.Context(), cfg.Demo.Username, cfg.Demo.Password); err != nil {
			zapLogger.Fatal("demo seeding failed", zap.Error(err))
		}
	}

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)
	// Suggestions call out to OpenAI, so they get their own deadline.
	suggestAdapter := httpcontext.NewAdapter(cfg.OpenAI.Timeout)

	handlers := router.Handlers{
		Auth:     apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Contact:  apiHandler.NewContactHandler(contactUseCase, ctxAdapter, zapLogger),
		Workflow: apiHandler.NewWorkflowHandler(workflowUseCase, ctxAdapter, zapLogger),
		Agent:    apiHandler.NewAgentHandler(agentUseCase, ctxAdapter, zapLogger),
		Task:     apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Activity: apiHandler.NewActivityHandler(activityUseCase, ctxAdapter, zapLogger),
		Template: apiHandler.NewTemplateHandler(workflowUseCase, ctxAdapter, zapLogger),
		Suggest:  apiHandler.NewSuggestHandler(generator, suggestAdapter, zapLogger),
		Health:   apiHandler.NewHealthHandler(store, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.Auth.JWTSecret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.OnStop("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	if err := manager.Wait(); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
