package logger_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/switchback/logger"
)

func TestLogContextMarshalText(t *testing.T) {
	// Arrange
	lc := logger.LogContext{}

	// Act
	b, err := lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, []byte("{}"), b)

	// Arrange
	lc = logger.LogContext{Data: map[string]any{"route": "/users/{id}"}}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"data":{"route":"/users/{id}"}}`, string(b))

	// Arrange
	lc = logger.LogContext{Error: errors.New("test")}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"error":"test"}`, string(b))

	// Arrange
	r := httptest.NewRequest(http.MethodGet, "https://example.com/users/42?edit=true", nil)
	lc = logger.LogContext{Request: r}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)

	var actual map[string]any
	require.Nil(t, json.Unmarshal(b, &actual))
	req, ok := actual["request"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, http.MethodGet, req["method"])
	require.Equal(t, "https://example.com/users/42?edit=true", req["url"])
}

func TestLogContextString(t *testing.T) {
	// NOTE: String marshals the LogContext, which routes through MarshalText,
	// so the JSON comes back quoted as a JSON string.
	lc := logger.LogContext{Data: map[string]any{"requestID": "abc"}}
	require.Equal(t, `"{\"data\":{\"requestID\":\"abc\"}}"`, lc.String())
}
