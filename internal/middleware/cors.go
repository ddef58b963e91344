package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors allows the given origins; "*" allows any.
func Cors(allowedOrigins []string) Middleware {
	options := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
		},
		AllowedHeaders: []string{"*"},
	}
	return cors.New(options).Handler
}
