// Package httpapi exposes the auth operations and health probes as a small
// JSON-over-HTTP API next to the gRPC service.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/palace/internal/logging"
	"github.com/dmitrijs2005/palace/internal/server/metrics"
	"github.com/dmitrijs2005/palace/internal/server/models"
	"github.com/dmitrijs2005/palace/internal/server/services"
	"github.com/gorilla/mux"
)

// UserService is the account logic the handlers delegate to.
type UserService interface {
	Signup(ctx context.Context, req services.SignupRequest) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	GetMe(ctx context.Context, token string) (*models.PublicUser, error)
	UpdateRegions(ctx context.Context, token string, regions []models.Region) (*models.PublicUser, error)
	DeleteAccount(ctx context.Context, token string) error
}

type Server struct {
	address string
	users   UserService
	logger  logging.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewServer(address string, l logging.Logger, us UserService, m *metrics.Metrics) *Server {
	return &Server{
		address: address,
		users:   us,
		logger:  l.With("module", "http_server"),
		metrics: m,
		now:     time.Now,
	}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.observe)

	r.HandleFunc("/", s.root).Methods(http.MethodGet)
	r.HandleFunc("/api/health", s.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/auth").Subrouter()
	api.HandleFunc("/signup", s.signup).Methods(http.MethodPost).Name("signup")
	api.HandleFunc("/login", s.login).Methods(http.MethodPost).Name("login")
	api.HandleFunc("/me", s.me).Methods(http.MethodGet).Name("getMe")
	api.HandleFunc("/me", s.deleteMe).Methods(http.MethodDelete).Name("deleteMe")
	api.HandleFunc("/me/regions", s.updateRegions).Methods(http.MethodPut).Name("updateRegions")

	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}
	return r
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// observe records metrics for the named auth routes.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := mux.CurrentRoute(r)
		if route == nil || route.GetName() == "" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		s.metrics.Observe(route.GetName(), outcomeOf(rec.status), elapsed)
		s.logger.Info(r.Context(), "http request", "op", route.GetName(), "status", rec.status, "elapsed", elapsed)
	})
}

func outcomeOf(status int) string {
	switch {
	case status < 400:
		return metrics.OutcomeOK
	case status == http.StatusBadRequest:
		return metrics.OutcomeInvalid
	case status == http.StatusConflict:
		return metrics.OutcomeConflict
	case status == http.StatusUnauthorized:
		return metrics.OutcomeUnauthorized
	default:
		return metrics.OutcomeError
	}
}
