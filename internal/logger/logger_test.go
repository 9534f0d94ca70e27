package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	// redirect output to buffer for inspection
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_Independent verifies that enriching a child logger does
// not mutate the parent.
func TestGetChildLogger_Independent(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer
	parent := Nop()
	parent.Logger = zerolog.New(&parentBuf)

	child := parent.GetChildLogger()
	child.Logger = child.Output(&childBuf)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("extra", "child-only")
	})

	parent.Info().Msg("parent entry")
	child.Info().Msg("child entry")

	assert.NotContains(t, parentBuf.String(), "child-only")
	assert.Contains(t, childBuf.String(), "child-only")
}

// TestFromRequest_ReturnsContextLogger verifies that FromRequest extracts the
// logger previously attached to the request context.
func TestFromRequest_ReturnsContextLogger(t *testing.T) {
	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str("marker", "attached").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(attached.WithContext(req.Context()))

	l := FromRequest(req)
	require.NotNil(t, l)

	l.Info().Msg("via request")
	assert.Contains(t, buf.String(), "attached")
}

// TestFromContext_NeverNil verifies that FromContext falls back to the global
// logger when no logger is attached.
func TestFromContext_NeverNil(t *testing.T) {
	l := FromContext(t.Context())
	require.NotNil(t, l)
}
