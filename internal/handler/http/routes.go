package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires all routes of the API. Paths keep the trailing slash the
// frontend expects.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/registration/", h.registration)
		r.Post("/api/login/", h.login)
	})

	// routes behind JWT auth
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/email-check/", h.emailCheck)

		r.Route("/api/boards", func(r chi.Router) {
			r.Get("/", h.listBoards)
			r.Post("/", h.createBoard)
			r.Get("/{boardID}/", h.getBoard)
			r.Patch("/{boardID}/", h.updateBoard)
			r.Delete("/{boardID}/", h.deleteBoard)
		})

		r.Route("/api/tasks", func(r chi.Router) {
			r.Post("/", h.createTask)
			r.Get("/assigned-to-me/", h.assignedTasks)
			r.Get("/reviewing/", h.reviewingTasks)
			r.Patch("/{taskID}/", h.updateTask)
			r.Delete("/{taskID}/", h.deleteTask)
			r.Get("/{taskID}/comments/", h.listComments)
			r.Post("/{taskID}/comments/", h.createComment)
			r.Delete("/{taskID}/comments/{commentID}/", h.deleteComment)
		})
	})

	return router
}
