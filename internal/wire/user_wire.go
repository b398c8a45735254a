package wire

import (
	"auth-platform/internal/adaptor"
	"auth-platform/pkg/middleware"
	"auth-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, tokens *utils.JWTManager, log *zap.Logger) {
	r.With(middleware.AuthJWT(tokens, log)).Get("/api/me", userHandler.Me)
}
