package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the client apps to call the API across origins. The App
// header carries the client-app identity and must be allowed through.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "App"},
		MaxAge:         300,
	})
}
