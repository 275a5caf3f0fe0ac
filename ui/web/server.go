package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"gitlab.com/aoterocom/AODepthView/helpers"
	"gitlab.com/aoterocom/AODepthView/models"
	"gitlab.com/aoterocom/AODepthView/services"
	"gitlab.com/aoterocom/AODepthView/ui/components"
)

// Server publishes the latest rendered panel. Only Consume renders the panel; handlers read the
// stored markup.
type Server struct {
	panel   *components.Panel
	metrics *services.MetricsService
	refresh time.Duration

	mu     sync.RWMutex
	markup []byte
}

func NewServer(panel *components.Panel, metrics *services.MetricsService, refresh time.Duration) *Server {
	return &Server{
		panel:   panel,
		metrics: metrics,
		refresh: refresh,
	}
}

// Update renders the panel for levels and replaces the published markup.
func (s *Server) Update(levels []models.BookLevel) error {
	view := s.panel.Render(levels)

	var buf bytes.Buffer
	if err := Markup(&buf, view); err != nil {
		return err
	}
	up, down := view.Moves()
	s.metrics.Render("web", len(view.Rows), up, down)

	s.mu.Lock()
	s.markup = buf.Bytes()
	s.mu.Unlock()
	return nil
}

// Consume renders every slice received on rows until it is closed or ctx is done.
func (s *Server) Consume(ctx context.Context, rows <-chan []models.BookLevel) {
	for {
		select {
		case levels, ok := <-rows:
			if !ok {
				return
			}
			if err := s.Update(levels); err != nil {
				helpers.Logger.Errorln("web: " + err.Error())
			}
		case <-ctx.Done():
			return
		}
	}
}

func (s *Server) Markup() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.markup
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/", s.handlePage).Methods(http.MethodGet)
	router.HandleFunc("/depth", s.handleFragment).Methods(http.MethodGet)
	router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	return router
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	refresh := int(math.Max(1, math.Round(s.refresh.Seconds())))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := writePage(w, s.panel.Options().Headline, refresh, s.Markup()); err != nil {
		helpers.Logger.Errorln("web: " + err.Error())
	}
}

func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	markup := s.Markup()
	if markup == nil {
		http.Error(w, "no depth received yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(markup)
}

// ListenAndServe serves the router on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		helpers.Logger.Infoln("web: listening on " + addr)
		errC <- srv.ListenAndServe()
	}()

	select {
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
