package handler

import (
	"io"
	"net/http"
)

func textHandler(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, text)
	}
}

// HealthHandler reports that the server is running.
var HealthHandler = textHandler("OK")

// LivenessHandler reports that the process is alive.
var LivenessHandler = textHandler("Alive")

// ReadinessHandler reports that the server accepts requests. The echo
// responder has no dependencies, so it is ready as soon as it serves.
var ReadinessHandler = textHandler("Ready")
