package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/eks-decision-api/internal/api"
	apiMiddleware "github.com/phrazzld/eks-decision-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)

	decisionHandler := api.NewDecisionHandler(app.table, app.logger)
	docsHandler, err := api.NewDocsHandler(app.table, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build API docs: %w", err)
	}

	// Health check endpoints
	r.Get("/", api.HealthCheck)
	r.Get("/health", api.HealthCheck)

	r.Get("/profiles", decisionHandler.ListProfiles)
	r.Get("/decision/{"+api.ProfileParam+"}", decisionHandler.GetDecision)

	// Documentation
	r.Get(api.OpenAPIPath, docsHandler.OpenAPI)
	r.Get("/docs", docsHandler.SwaggerUI)
	r.Get("/redoc", docsHandler.ReDoc)

	return r, nil
}
