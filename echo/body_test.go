package echo_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schema-gateway/mock-upstream/echo"
)

func TestParseBody_Empty(t *testing.T) {
	for _, data := range [][]byte{nil, {}} {
		body := echo.ParseBody(data)
		assert.Equal(t, echo.BodyNone, body.Kind())

		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		assert.Equal(t, "null", string(encoded))
	}
}

func TestParseBody_JSON(t *testing.T) {
	tests := []string{
		`{"name":"widget"}`,
		`[1,2,3]`,
		`"text"`,
		`42`,
		`true`,
		`null`,
		"  {\"padded\": true}\n",
	}

	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			body := echo.ParseBody([]byte(tt))
			assert.Equal(t, echo.BodyJSON, body.Kind())

			value, ok := body.JSON()
			require.True(t, ok)
			assert.JSONEq(t, tt, string(value))

			_, ok = body.Raw()
			assert.False(t, ok)
		})
	}
}

func TestParseBody_Raw(t *testing.T) {
	tests := []string{
		"not-json",
		"{broken",
		"   ",
		"<xml/>",
		"a & b",
	}

	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			body := echo.ParseBody([]byte(tt))
			assert.Equal(t, echo.BodyRaw, body.Kind())

			text, ok := body.Raw()
			require.True(t, ok)
			assert.Equal(t, tt, text)

			encoded, err := json.Marshal(body)
			require.NoError(t, err)

			var decoded string
			require.NoError(t, json.Unmarshal(encoded, &decoded))
			assert.Equal(t, tt, decoded)
		})
	}
}

func TestParseBody_InvalidUTF8(t *testing.T) {
	body := echo.ParseBody([]byte{'a', 0xff, 'b'})
	assert.Equal(t, echo.BodyRaw, body.Kind())

	text, ok := body.Raw()
	require.True(t, ok)
	assert.Equal(t, "a\uFFFDb", text)
}

func TestParseBody_PreservesNumbers(t *testing.T) {
	body := echo.ParseBody([]byte(`{"big":12345678901234567890}`))

	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), "12345678901234567890")
}

func TestBodyKind_String(t *testing.T) {
	assert.Equal(t, "none", echo.BodyNone.String())
	assert.Equal(t, "json", echo.BodyJSON.String())
	assert.Equal(t, "raw", echo.BodyRaw.String())
	assert.Equal(t, "unknown", echo.BodyKind(99).String())
}
