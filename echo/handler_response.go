package echo

import (
	"encoding/json"
	"net/http"
)

// getErrorStatusCode returns the status code for the given error.
func getErrorStatusCode(err error) int {
	if status, ok := wellKnownErrors[err]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// newEchoResponse encodes the echo document into a response.
func newEchoResponse(status int, echo Echo) Response {
	body, err := encodeEcho(echo)
	if err != nil {
		return newErrorResponse(err)
	}

	return newResponse(status, body)
}

// newMethodNotAllowedResponse creates a 405 response that lists the
// supported methods.
func newMethodNotAllowedResponse() Response {
	res := newErrorResponse(ErrMethodNotAllowed)
	res.Header.Set("Allow", allowedMethods)
	return res
}

// newErrorResponse creates a new error response.
func newErrorResponse(err error) Response {
	statusCode := getErrorStatusCode(err)

	type responseError struct {
		Message string `json:"message"`
	}

	body, err := json.Marshal(struct {
		Error responseError `json:"error"`
	}{
		Error: responseError{Message: err.Error()},
	})
	if err != nil {
		return Response{StatusCode: http.StatusInternalServerError, Header: make(http.Header)}
	}

	return newResponse(statusCode, body)
}

// newResponse creates a new response.
func newResponse(status int, body []byte) Response {
	header := make(http.Header)
	header.Add("Content-Type", "application/json")

	return Response{
		StatusCode: status,
		Body:       body,
		Header:     header,
	}
}
