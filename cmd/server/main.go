package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/handler"
	"github.com/portfolio/backend/internal/logging"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/notify"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/auth"
)

// notifyingPortfolioService publishes after each successful write. A
// failed publish is logged but does not fail the write.
type notifyingPortfolioService struct {
	service.PortfolioService
	bus notify.Broadcaster
}

func (s notifyingPortfolioService) Replace(ctx context.Context, record *model.PortfolioRecord) error {
	if err := s.PortfolioService.Replace(ctx, record); err != nil {
		return err
	}
	if err := s.bus.Publish(ctx); err != nil {
		slog.Warn("publish portfolio update failed", "error", err)
	}
	return nil
}

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	portfolioRepo := repository.NewPgPortfolioRepository(pool)
	messageRepo := repository.NewPgMessageRepository(pool)
	adminRepo := repository.NewPgAdminRepository(pool)

	sessionSecret := auth.SessionSecretBytes(cfg.SessionSecret)
	authService := service.NewAuthService(adminRepo, sessionSecret)
	portfolioService := service.NewPortfolioService(portfolioRepo)
	messageService := service.NewMessageService(messageRepo)

	// When Redis is configured, admin writes fan out an invalidation
	// tick so caches in other processes refetch.
	if cfg.RedisURL != "" {
		bus, err := notify.NewRedis(cfg.RedisURL)
		if err != nil {
			logging.Fatal("failed to connect to redis", "error", err)
		}
		defer bus.Close()
		portfolioService = notifyingPortfolioService{portfolioService, bus}
	}

	h := handler.New(pool, cfg.FrontendURL)
	authHandler := handler.NewAuthHandler(authService, sessionSecret, cfg.Production)
	portfolioHandler := handler.NewPortfolioHandler(portfolioService)
	messageHandler := handler.NewMessageHandler(messageService)

	requireAuth := auth.RequireAuth(sessionSecret)
	contactLimiter := handler.NewRateLimiter(cfg.ContactRateLimit)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)

	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/auth/verify", authHandler.Verify)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)

	// The portfolio record is public to read; only the admin writes it.
	mux.HandleFunc("GET /api/portfolio", portfolioHandler.Get)
	mux.Handle("PUT /api/portfolio", requireAuth(http.HandlerFunc(portfolioHandler.Update)))

	// The contact form is the only public write, so it gets the limiter.
	mux.Handle("POST /api/messages", contactLimiter.Middleware(http.HandlerFunc(messageHandler.Submit)))
	mux.Handle("GET /api/messages", requireAuth(http.HandlerFunc(messageHandler.List)))
	mux.Handle("PUT /api/messages", requireAuth(http.HandlerFunc(messageHandler.Replace)))
	mux.Handle("DELETE /api/messages/{id}", requireAuth(http.HandlerFunc(messageHandler.Delete)))

	chain := h.CORS(handler.SecurityHeaders(handler.RequestLogger(mux)))

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      chain,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
