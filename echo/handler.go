package echo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	// HeaderSchemaValidated is set by the gateway once it validated a request.
	HeaderSchemaValidated = "X-Schema-Validated"

	// HeaderGatewayError is set by the gateway when validation failed but the
	// request was forwarded anyway.
	HeaderGatewayError = "X-Gateway-Error"

	// CreatedID is the identifier reported for every POST.
	CreatedID = 12345

	messageGet  = "GET request received"
	messagePost = "POST request received and processed"
)

var (
	ErrMethodNotAllowed = errors.New("method not allowed")
)

var wellKnownErrors = map[error]int{
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
}

// allowedMethods is advertised in the Allow header of 405 responses.
const allowedMethods = "GET, POST"

// HandlerParams defines the dependencies for the echo handler.
type HandlerParams struct {
	fx.In

	Log *zap.Logger
}

// Request represents an incoming request.
type Request struct {
	Path   string
	Method string
	Body   []byte
	Header http.Header
}

// Response represents an outgoing response.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// Echo is the document written back to the caller.
type Echo struct {
	Method           string  `json:"method"`
	Path             string  `json:"path"`
	GatewayValidated *string `json:"gateway_validated"`
	GatewayError     *string `json:"gateway_error"`
	ReceivedBody     *Body   `json:"received_body,omitempty"`
	Message          string  `json:"message"`
	CreatedID        *int    `json:"created_id,omitempty"`
}

// Handler is the interface for handling echo requests.
type Handler interface {
	Handle(ctx context.Context, request Request) Response
}

// EchoHandler reflects GET and POST requests back to the caller.
// It holds no state between requests.
type EchoHandler struct {
	log *zap.Logger
}

var _ Handler = (*EchoHandler)(nil)

// NewEchoHandler creates a new echo handler.
func NewEchoHandler(params HandlerParams) Handler {
	return &EchoHandler{
		log: params.Log,
	}
}

// Handle handles an echo request.
func (h *EchoHandler) Handle(_ context.Context, req Request) Response {
	log := h.log.With(
		zap.String("path", req.Path),
		zap.String("method", req.Method),
	)

	switch req.Method {
	case http.MethodGet:
		return h.handleGet(req)
	case http.MethodPost:
		return h.handlePost(req)
	default:
		log.Debug("unsupported method")
		return newMethodNotAllowedResponse()
	}
}

func (h *EchoHandler) handleGet(req Request) Response {
	return newEchoResponse(http.StatusOK, Echo{
		Method:           http.MethodGet,
		Path:             req.Path,
		GatewayValidated: headerValue(req.Header, HeaderSchemaValidated),
		GatewayError:     headerValue(req.Header, HeaderGatewayError),
		Message:          messageGet,
	})
}

func (h *EchoHandler) handlePost(req Request) Response {
	body := ParseBody(req.Body)
	if body.Kind() == BodyRaw {
		h.log.Debug("body is not json, passing through as text",
			zap.String("path", req.Path),
			zap.Int("size", len(req.Body)),
		)
	}

	createdID := CreatedID

	return newEchoResponse(http.StatusCreated, Echo{
		Method:           http.MethodPost,
		Path:             req.Path,
		GatewayValidated: headerValue(req.Header, HeaderSchemaValidated),
		GatewayError:     headerValue(req.Header, HeaderGatewayError),
		ReceivedBody:     &body,
		Message:          messagePost,
		CreatedID:        &createdID,
	})
}

// headerValue returns the first value of the named header, or nil if
// the header is absent. A present but empty header yields "".
func headerValue(header http.Header, name string) *string {
	values := header.Values(name)
	if len(values) == 0 {
		return nil
	}

	value := values[0]
	return &value
}

// encodeEcho renders the echo document as indented JSON without
// escaping HTML characters, so echoed text stays readable.
func encodeEcho(echo Echo) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(echo); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
