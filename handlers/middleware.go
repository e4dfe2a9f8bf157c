package handlers

import (
	"net/http"

	"github.com/flow-hydraulics/launcher-settings/handlers/middleware"
	gorilla "github.com/gorilla/handlers"
)

func UseCors(h http.Handler) http.Handler {
	return gorilla.CORS(
		gorilla.AllowedOrigins([]string{"*"}),
		gorilla.AllowedMethods([]string{http.MethodGet, http.MethodPut, http.MethodOptions}),
		gorilla.AllowedHeaders([]string{"Content-Type"}),
	)(h)
}

func UseLogging(h http.Handler) http.Handler {
	return middleware.LoggingHandler(h)
}

func UseCompress(h http.Handler) http.Handler {
	return gorilla.CompressHandler(h)
}

func UseJson(h http.Handler) http.Handler {
	// Only PUT, POST, and PATCH requests are considered.
	return gorilla.ContentTypeHandler(h, "application/json")
}
