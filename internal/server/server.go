package server

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/npapadam/openclaw-dashboard/internal/models"
	"github.com/npapadam/openclaw-dashboard/internal/repositories"
	"github.com/npapadam/openclaw-dashboard/internal/services"
)

// Authenticator is the session side of the auth boundary. Satisfied by
// services.AuthService; tests substitute a fake.
type Authenticator interface {
	Login(ctx context.Context, password string) (*services.LoginResponse, error)
	Verify(ctx context.Context, token string) (*models.Session, error)
	Logout(ctx context.Context, token string) error
}

// Server is the HTTP gateway: it enforces one of two authorization modes per
// route (shared-secret header for machine writers, session cookie for the
// dashboard) and translates requests into store operations.
type Server struct {
	activities repositories.ActivityRepository
	snapshots  repositories.SnapshotRepository
	auth       Authenticator
	apiKey     string
}

func New(
	activities repositories.ActivityRepository,
	snapshots repositories.SnapshotRepository,
	auth Authenticator,
	apiKey string,
) *Server {
	return &Server{
		activities: activities,
		snapshots:  snapshots,
		auth:       auth,
		apiKey:     apiKey,
	}
}

// Router builds the route table. The auth mode for each route is fixed here,
// at registration time.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/webhook", s.handleWebhookHealth)
		r.With(s.requireAPIKey).Post("/webhook", s.handleWebhook)

		r.With(s.requireSession).Get("/activities", s.handleListActivities)

		r.With(s.requireSession).Get("/cron", s.handleGetCron)
		r.With(s.requireAPIKey).Post("/cron", s.handlePostCron)

		r.Post("/login", s.handleLogin)
		r.With(s.requireSession).Post("/logout", s.handleLogout)
	})

	return r
}
