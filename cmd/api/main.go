package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"trainingapi/internal/book"
	"trainingapi/internal/film"
	apphttp "trainingapi/internal/http"
	"trainingapi/internal/store"
	"trainingapi/internal/token"
)

func main() {
	loadEnvFiles()

	if err := run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataStore := store.New()
	tokenService := token.NewService(token.NewIssuer(cfg.TokenSecret, token.Marker), token.DefaultAllowList)

	handler := apphttp.NewHandler(ctx, apphttp.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		EnableHSTS:     cfg.EnableHSTS,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		MaxBodyBytes:   cfg.MaxBodyBytes,
	}, apphttp.Handlers{
		Books:  book.NewHTTPHandler(book.NewService(dataStore)),
		Films:  film.NewHTTPHandler(film.NewService(dataStore)),
		Tokens: token.NewHTTPHandler(tokenService, cfg.InvalidTokenPolicy),
	})

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	log.Printf("Training app listening on port %d (invalid_token_policy=%s)", ln.Addr().(*net.TCPAddr).Port, cfg.InvalidTokenPolicy)

	return serve(ctx, apphttp.NewServer(listenAddr, handler), ln, cfg.ShutdownTimeout)
}
