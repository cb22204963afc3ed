// Package httpapi serves blog posts over a JSON HTTP API.
//
// Routes:
//
//	GET /api/{lang}/posts                  one page of posts
//	GET /api/{lang}/posts/{slug}           a single post
//	GET /api/{lang}/posts/{slug}/headings  the post's table of contents
//	GET /sitemap.xml                       site map of every post
//	GET /health                            liveness probe
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/custodia-labs/issueblog/internal/core/domain"
	"github.com/custodia-labs/issueblog/internal/core/ports/driving"
)

// shutdownTimeout bounds how long Run waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

// Config holds the server settings.
type Config struct {
	// Port is the TCP port to listen on.
	Port int

	// BaseURL is the public site URL used for the sitemap.
	BaseURL string
}

// Server is the HTTP server exposing the post service.
type Server struct {
	cfg        Config
	posts      driving.PostService
	logger     *slog.Logger
	httpServer *http.Server
}

// NewServer creates a new HTTP server backed by posts.
func NewServer(cfg Config, posts driving.PostService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:    cfg,
		posts:  posts,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/{lang}/posts", s.handleListPosts)
	mux.HandleFunc("GET /api/{lang}/posts/{slug}", s.handleGetPost)
	mux.HandleFunc("GET /api/{lang}/posts/{slug}/headings", s.handleHeadings)
	mux.HandleFunc("GET /sitemap.xml", s.handleSitemap)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      withLogging(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the server's root handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Run serves requests until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// postResponse is a post with its listing excerpt.
type postResponse struct {
	domain.Post
	Excerpt string `json:"excerpt"`
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{Post: *p, Excerpt: p.Excerpt()}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	locale, err := domain.ParseLocale(r.PathValue("lang"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidLocale", err.Error())
		return
	}

	page, err := queryInt(r, "page", 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}
	perPage, err := queryInt(r, "per_page", domain.DefaultPageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	posts, err := s.posts.ListPosts(r.Context(), domain.PageRequest{
		Locale:   locale,
		Page:     page,
		PageSize: perPage,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	resp := make([]postResponse, 0, len(posts))
	for i := range posts {
		resp = append(resp, toPostResponse(&posts[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	locale, err := domain.ParseLocale(r.PathValue("lang"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidLocale", err.Error())
		return
	}

	post, err := s.posts.GetPostBySlug(r.Context(), r.PathValue("slug"), locale)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponse(post))
}

func (s *Server) handleHeadings(w http.ResponseWriter, r *http.Request) {
	locale, err := domain.ParseLocale(r.PathValue("lang"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidLocale", err.Error())
		return
	}

	headings, err := s.posts.Headings(r.Context(), r.PathValue("slug"), locale)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, headings)
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	entries, err := s.posts.Sitemap(r.Context(), s.cfg.BaseURL)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := WriteSitemap(w, entries); err != nil {
		s.logger.Error("failed to write sitemap", "error", err)
	}
}

// writeServiceError maps a service error onto a status code.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "NotFound", err.Error())
	case errors.Is(err, domain.ErrInvalidLocale), errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case errors.Is(err, domain.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, "NotConfigured", err.Error())
	default:
		s.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "InternalError", "internal error")
	}
}

// queryInt parses a positive integer query parameter.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, errType, message string) {
	writeJSON(w, status, map[string]string{
		"error":   errType,
		"message": message,
	})
}
