package echo

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// BodyKind tells how a request body was interpreted.
type BodyKind int

const (
	// BodyNone means the request carried no body.
	BodyNone BodyKind = iota

	// BodyJSON means the body parsed as a JSON value.
	BodyJSON

	// BodyRaw means the body did not parse as JSON and is
	// passed through as text.
	BodyRaw
)

func (k BodyKind) String() string {
	switch k {
	case BodyNone:
		return "none"
	case BodyJSON:
		return "json"
	case BodyRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Body is a request body that either parsed as JSON or fell back to
// raw text. The zero value is an absent body.
type Body struct {
	kind BodyKind
	json json.RawMessage
	raw  string
}

var _ json.Marshaler = Body{}

// ParseBody interprets data as JSON, falling back to raw text when it
// is not a valid JSON document. Empty data yields an absent body.
func ParseBody(data []byte) Body {
	if len(data) == 0 {
		return Body{kind: BodyNone}
	}

	if !utf8.Valid(data) {
		return RawBody(strings.ToValidUTF8(string(data), string(utf8.RuneError)))
	}

	if json.Valid(data) {
		return JSONBody(bytes.TrimSpace(data))
	}

	return RawBody(string(data))
}

// JSONBody wraps an already valid JSON document.
func JSONBody(value json.RawMessage) Body {
	return Body{kind: BodyJSON, json: value}
}

// RawBody wraps text that is passed through verbatim.
func RawBody(text string) Body {
	return Body{kind: BodyRaw, raw: text}
}

// Kind returns how the body was interpreted.
func (b Body) Kind() BodyKind {
	return b.kind
}

// JSON returns the parsed JSON document, if the body is JSON.
func (b Body) JSON() (json.RawMessage, bool) {
	return b.json, b.kind == BodyJSON
}

// Raw returns the passthrough text, if the body fell back to raw text.
func (b Body) Raw() (string, bool) {
	return b.raw, b.kind == BodyRaw
}

// MarshalJSON encodes an absent body as null, a JSON body verbatim
// and a raw body as a JSON string.
func (b Body) MarshalJSON() ([]byte, error) {
	switch b.kind {
	case BodyJSON:
		return b.json, nil
	case BodyRaw:
		return marshalString(b.raw)
	default:
		return []byte("null"), nil
	}
}

// marshalString encodes s as a JSON string, leaving HTML characters
// unescaped.
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
