package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/flow-hydraulics/launcher-settings/api"
	"github.com/flow-hydraulics/launcher-settings/errors"
	"github.com/flow-hydraulics/launcher-settings/settings"
	log "github.com/sirupsen/logrus"
)

// Settings is a HTTP server for launcher settings management.
type Settings struct {
	service *api.Settings
}

func NewSettings(service *api.Settings) *Settings {
	return &Settings{service}
}

func (s *Settings) Get() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		res, err := s.service.Get(r.Context())
		if err != nil {
			handleError(rw, r, err)
			return
		}

		handleJsonResponse(rw, http.StatusOK, res)
	})
}

// Set replaces the settings with the request body. Fields missing from the
// body take their zero value.
func (s *Settings) Set() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		// Check body is not empty
		if err := checkNonEmptyBody(r); err != nil {
			handleError(rw, r, err)
			return
		}

		d := json.NewDecoder(r.Body)
		d.DisallowUnknownFields()

		var next settings.Settings
		if err := d.Decode(&next); err != nil {
			handleError(rw, r, InvalidBodyError)
			return
		}

		next.Language = strings.ToLower(next.Language)
		if !settings.IsSupportedLanguage(next.Language) {
			handleError(rw, r, &errors.RequestError{
				StatusCode: http.StatusBadRequest,
				Err:        fmt.Errorf("language %q is not available, expected one of %s", next.Language, strings.Join(settings.Languages, ", ")),
			})
			return
		}

		if err := s.service.Set(r.Context(), &next); err != nil {
			handleError(rw, r, err)
			return
		}

		log.WithFields(log.Fields{"settings": &next}).Debug("Settings replaced")

		// Return the settings as readers will now see them
		res, err := s.service.Get(r.Context())
		if err != nil {
			handleError(rw, r, err)
			return
		}

		handleJsonResponse(rw, http.StatusOK, res)
	})
}

func (s *Settings) Version() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		res, err := s.service.Version(r.Context())
		if err != nil {
			handleError(rw, r, err)
			return
		}

		handleJsonResponse(rw, http.StatusOK, res)
	})
}
