package wire

import (
	"auth-platform/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Public routes; the App header identifies the calling client app
	r.Post("/api/check-email", authHandler.CheckEmail)
	r.Post("/api/signup", authHandler.SignUp)
	r.Post("/api/verify", authHandler.Verify)
	r.Post("/api/signin", authHandler.SignIn)
}
