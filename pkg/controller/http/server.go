package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewRouter mounts handler on every path and method behind the common
// middleware chain. Methods unknown to chi are routed to handler too so
// that they receive the handler's own 400 response rather than a 405.
func NewRouter(ctx context.Context, handler *Handler) chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(CORSMiddleware)
	router.Use(RecoverMiddleware)

	router.Handle("/*", handler)
	router.NotFound(handler.ServeHTTP)
	router.MethodNotAllowed(handler.ServeHTTP)

	return router
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, handler *Handler) *Server {
	router := NewRouter(ctx, handler)

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}
