package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tasknest/tasknest-api/internal/api"
	apimiddleware "github.com/tasknest/tasknest-api/internal/api/middleware"
)

// setupRouter builds the application router with all middleware and routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordAuth,
		app.passwordAuth,
	)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.sessionGuard)

	taskHandler := api.NewTaskHandler(app.taskService)
	bookHandler := api.NewBookHandler(app.bookStore)

	r.Route("/api", func(r chi.Router) {
		// Public authentication endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// The book catalog is shared and carries no ownership
		r.Post("/books", bookHandler.Create)
		r.Get("/books/{id}", bookHandler.Get)
		r.Put("/books/{id}", bookHandler.Update)
		r.Delete("/books/{id}", bookHandler.Delete)

		// Task endpoints require a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/tasks", taskHandler.Create)
			r.Post("/tasks/batch", taskHandler.CreateBatch)
			r.Get("/tasks", taskHandler.List)
			r.Get("/tasks/{id}", taskHandler.Get)
			r.Put("/tasks/{id}", taskHandler.Update)
			r.Delete("/tasks/{id}", taskHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
