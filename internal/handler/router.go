package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	healthHandler *HealthHandler,
	authHandler *AuthHandler,
	documentHandler *DocumentHandler,
	authMiddleware mux.MiddlewareFunc,
) http.Handler {
	router := mux.NewRouter()

	// Probes and auth endpoints (no auth required)
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/ready", healthHandler.Ready).Methods("GET")
	router.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/auth/token", authHandler.Token).Methods("POST")

	// Document routes (require authentication)
	protected := router.PathPrefix("/documents").Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/upload", documentHandler.Upload).Methods("POST")
	protected.HandleFunc("/{id}/replace", documentHandler.Replace).Methods("POST")
	protected.HandleFunc("/{id}/download", documentHandler.Download).Methods("GET")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
