// Package handlers provides HTTP handlers for the launcher settings API.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/flow-hydraulics/launcher-settings/errors"
	log "github.com/sirupsen/logrus"
)

var (
	EmptyBodyError   = &errors.RequestError{StatusCode: http.StatusBadRequest, Err: fmt.Errorf("empty body")}
	InvalidBodyError = &errors.RequestError{StatusCode: http.StatusBadRequest, Err: fmt.Errorf("invalid body")}
)

// handleError is a helper function for unified HTTP error handling.
func handleError(rw http.ResponseWriter, r *http.Request, err error) {
	entry := log.WithFields(log.Fields{"error": err})
	if r != nil {
		entry = entry.WithFields(log.Fields{"method": r.Method, "path": r.URL.Path})
	}

	// Check if the error was an errors.RequestError
	var reqErr *errors.RequestError
	if errors.As(err, &reqErr) {
		entry.Debug("Request error")
		http.Error(rw, reqErr.Error(), reqErr.StatusCode)
		return
	}

	if errors.Is(err, errors.ErrStateUnavailable) {
		entry.Warn("Application state unavailable")
		http.Error(rw, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	entry.Error("Request failed")

	// Otherwise do not send data regarding the error
	http.Error(rw, "internal server error", http.StatusInternalServerError)
}

// handleJsonResponse is a helper function for unified JSON response handling.
func handleJsonResponse(rw http.ResponseWriter, status int, res interface{}) {
	rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(res); err != nil {
		log.Warnf("unable to encode response: %s", err)
	}
}

func checkNonEmptyBody(r *http.Request) error {
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return EmptyBodyError
	}
	return nil
}
