package http

import (
	"context"
	"net/http"
	"time"

	"trainingapi/internal/httpx"
)

type Options struct {
	AllowedOrigins []string
	EnableHSTS     bool
	RateLimitRPS   float64
	RateLimitBurst int
	MaxBodyBytes   int64
}

// NewHandler wraps the router in the middleware chain. ctx bounds background
// work started by the middleware.
func NewHandler(ctx context.Context, opts Options, h Handlers) http.Handler {
	middlewares := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(opts.EnableHSTS),
		httpx.CORSMiddleware(opts.AllowedOrigins),
	}
	if opts.RateLimitRPS > 0 {
		middlewares = append(middlewares, httpx.NewRateLimitMiddleware(ctx, opts.RateLimitRPS, opts.RateLimitBurst).Middleware)
	}
	if opts.MaxBodyBytes > 0 {
		middlewares = append(middlewares, httpx.RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	}
	return httpx.Chain(NewRouter(h), middlewares...)
}

func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
