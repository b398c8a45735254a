package wire

import (
	"fmt"
	"net/http"
	"time"

	"auth-platform/internal/adaptor"
	"auth-platform/internal/data/repository"
	"auth-platform/internal/usecase"
	"auth-platform/pkg/mailer"
	"auth-platform/pkg/middleware"
	"auth-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	apps, err := usecase.ParseAppTypeTable(config.ClientApps)
	if err != nil {
		return nil, fmt.Errorf("parse client app table: %w", err)
	}

	mail := mailer.NewSMTPMailer(config.Email)
	tokens := utils.NewJWTManager(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour)

	service := usecase.NewService(repo, mail, tokens, apps, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router: router,
	}, nil
}

func setupRouter(handler *adaptor.Handler, tokens *utils.JWTManager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
