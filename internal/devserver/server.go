// Package devserver is an in-memory stand-in for the Fintrack API so the
// client can be developed and demonstrated without the real backend. It
// speaks the same envelope contract, issues real bearer tokens, and
// keeps all state in process memory.
package devserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server holds the dev server's state and token-signing configuration.
type Server struct {
	store  *store
	secret string
	expiry time.Duration
	logger *zap.Logger
}

// New returns a Server signing tokens with secret for the given lifetime.
func New(secret string, expiry time.Duration, logger *zap.Logger) *Server {
	return &Server{
		store:  newStore(),
		secret: secret,
		expiry: expiry,
		logger: logger,
	}
}

// Router mounts the API routes:
//
//	POST /api/v1/auth/register       — create an account
//	POST /api/v1/auth/verify-otp     — verify with the fixed dev OTP
//	POST /api/v1/auth/login          — obtain a bearer token
//	GET  /api/v1/auth/forgot-password — begin a password reset
//	PUT  /api/v1/auth/reset-password — finish a password reset
//
// and, behind bearer-token auth:
//
//	/api/v1/budgets, /api/v1/incomes, /api/v1/expenses — CRUD + paging
//	/api/v1/users/me                 — profile read/update/password
//	DELETE /api/v1/users/{id}        — self-deletion
//	POST /api/v1/uploads             — multipart file upload
//
// Uploaded files are served publicly under /uploads/{id}.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(withRequestLogging(s.logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/verify-otp", s.handleVerifyOTP)
		r.Post("/auth/login", s.handleLogin)
		r.Get("/auth/forgot-password", s.handleForgotPassword)
		r.Put("/auth/reset-password", s.handleResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/budgets", s.handleListBudgets)
			r.Post("/budgets", s.handleCreateBudget)
			r.Patch("/budgets/{id}", s.handleUpdateBudget)
			r.Delete("/budgets/{id}", s.handleDeleteBudget)

			r.Get("/incomes", s.handleListIncomes)
			r.Post("/incomes", s.handleCreateIncome)
			r.Patch("/incomes/{id}", s.handleUpdateIncome)
			r.Delete("/incomes/{id}", s.handleDeleteIncome)

			r.Get("/expenses", s.handleListExpenses)
			r.Post("/expenses", s.handleCreateExpense)
			r.Patch("/expenses/{id}", s.handleUpdateExpense)
			r.Delete("/expenses/{id}", s.handleDeleteExpense)

			r.Get("/users/me", s.handleGetProfile)
			r.Patch("/users/me", s.handleUpdateProfile)
			r.Put("/users/me/password", s.handleChangePassword)
			r.Delete("/users/{id}", s.handleDeleteAccount)

			r.Post("/uploads", s.handleUpload)
		})
	})

	r.Get("/uploads/{id}", s.handleServeUpload)

	return r
}
