package handler

import (
	"io"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/schema-gateway/mock-upstream/echo"
)

// LogTag prefixes every request log line.
const LogTag = "[UPSTREAM]"

type EchoHttpHandlerParams struct {
	fx.In

	Handler echo.Handler
	Log     *zap.Logger
}

func NewEchoHttpHandler(params EchoHttpHandlerParams) *EchoHttpHandler {
	return &EchoHttpHandler{
		handler: params.Handler,
		log:     params.Log,
	}
}

// EchoHttpHandler adapts an echo.Handler to net/http.
type EchoHttpHandler struct {
	handler echo.Handler
	log     *zap.Logger
}

func (h *EchoHttpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := requestPath(r)

	log := h.log.With(
		zap.String("path", path),
		zap.String("method", r.Method),
		zap.String("remote", r.RemoteAddr),
	)

	// Read the body
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		log.Info(LogTag+" "+r.Method+" "+path,
			zap.Int("status", http.StatusBadRequest),
			zap.Error(err),
		)
		return
	}

	request := echo.Request{
		Path:   path,
		Method: r.Method,
		Header: r.Header,
		Body:   body,
	}

	// Handle the request
	response := h.handler.Handle(r.Context(), request)

	// Map response headers
	for k, v := range response.Header {
		for _, vv := range v {
			w.Header().Add(k, vv)
		}
	}

	// Write response headers and status code
	w.WriteHeader(response.StatusCode)

	log.Info(LogTag+" "+r.Method+" "+path, zap.Int("status", response.StatusCode))

	// Write response body
	if _, err := w.Write(response.Body); err != nil {
		log.Debug("failed to write response", zap.Error(err))
	}
}

// requestPath returns the request target as sent by the client,
// including the query string. Requests that were not read off the
// wire, e.g. from the lambda adapter, fall back to the parsed URL.
func requestPath(r *http.Request) string {
	if r.RequestURI != "" {
		return r.RequestURI
	}

	return r.URL.RequestURI()
}
