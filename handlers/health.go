package handlers

import (
	"net/http"
)

func HandleHealthReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Liveness reports 200 with the result of getLiveness, or the mapped error.
func Liveness(getLiveness func(r *http.Request) (interface{}, error)) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		liveness, err := getLiveness(r)
		if err != nil {
			handleError(rw, r, err)
			return
		}
		handleJsonResponse(rw, http.StatusOK, liveness)
	})
}
