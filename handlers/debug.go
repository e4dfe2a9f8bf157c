package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

func servePlainText(w http.ResponseWriter, s string) {
	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Content-Length", strconv.Itoa(len(s)))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(s)) // nolint
}

// Thanks to:
// https://github.com/kjk/go-cookbook/tree/master/embed-build-number

func Debug(repoURL, sha1ver, buildtime string) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		v := mux.Vars(r)
		a := []string{
			fmt.Sprintf("url: %s %s", r.Method, r.RequestURI),
			"",
			fmt.Sprintf("ver: %s/commit/%s", repoURL, sha1ver),
			fmt.Sprintf("built on: %s", buildtime),
			fmt.Sprintf("api version called: %s", v["apiVersion"]),
		}

		servePlainText(rw, strings.Join(a, "\n"))
	})
}
