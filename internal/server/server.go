// Package server exposes the gallery, guestbook and RSVP over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/colonyops/invite/internal/core/gallery"
	"github.com/colonyops/invite/internal/core/guestbook"
	"github.com/colonyops/invite/internal/core/logging"
	"github.com/colonyops/invite/internal/core/rsvp"
)

// GuestbookService is the guestbook surface the API needs.
type GuestbookService interface {
	List(ctx context.Context) ([]guestbook.Entry, error)
	Add(ctx context.Context, in guestbook.Input) (guestbook.Entry, error)
	Delete(ctx context.Context, id, password string) error
}

// RSVPService is the RSVP surface the API needs.
type RSVPService interface {
	Submit(ctx context.Context, in rsvp.Input) (rsvp.Response, error)
	Summary(ctx context.Context) (rsvp.Summary, error)
}

// Options configures a Server. Nil services disable their routes.
type Options struct {
	WeddingID string
	Gallery   gallery.Collection
	Guestbook GuestbookService
	RSVP      RSVPService
	Metrics   *Metrics
	Logger    zerolog.Logger
}

// Server serves the API.
type Server struct {
	weddingID string
	gallery   gallery.Collection
	guestbook GuestbookService
	rsvp      RSVPService
	metrics   *Metrics
	logger    zerolog.Logger
}

// New returns a Server for opts.
func New(opts Options) *Server {
	m := opts.Metrics
	if m == nil {
		m = NewMetrics()
	}
	return &Server{
		weddingID: opts.WeddingID,
		gallery:   opts.Gallery,
		guestbook: opts.Guestbook,
		rsvp:      opts.RSVP,
		metrics:   m,
		logger:    opts.Logger,
	}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.withContext)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/gallery", s.handleGallery)

		if s.guestbook != nil {
			r.Get("/guestbook", s.handleGuestbookList)
			r.Post("/guestbook", s.handleGuestbookAdd)
			r.Delete("/guestbook/{id}", s.handleGuestbookDelete)
		}

		if s.rsvp != nil {
			r.Post("/rsvp", s.handleRSVPSubmit)
			r.Get("/rsvp/summary", s.handleRSVPSummary)
		}
	})

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("api listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		s.logger.Info().Msg("api stopped")
		return nil
	}
}

// withContext stores the wedding and request ids for log events.
func (s *Server) withContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.WithWeddingID(r.Context(), s.weddingID)
		ctx = logging.WithRequestID(ctx, middleware.GetReqID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// observe records request metrics and an access log line.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)

		s.metrics.Requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		s.metrics.Latency.WithLabelValues(route).Observe(elapsed.Seconds())

		s.logger.Debug().Ctx(r.Context()).
			Str("method", r.Method).
			Str("route", route).
			Int("status", status).
			Dur("elapsed", elapsed).
			Msg("request")
	})
}
