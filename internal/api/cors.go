package api

import (
	"net/http"

	"github.com/gorilla/handlers"
)

func setupCorsOptions(origins []string) []handlers.CORSOption {
	credentials := handlers.AllowCredentials()
	methods := handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions})
	allowedOrigins := handlers.AllowedOrigins(origins)
	headers := handlers.AllowedHeaders([]string{"Content-Type", "Accept", "Authorization", "Origin"})

	options := []handlers.CORSOption{credentials, methods, allowedOrigins, headers}
	return options
}
