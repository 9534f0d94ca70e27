package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ValievMarat/advert-service/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name            string
		requestTraceID  string
		wantSameTraceID bool
		wantValidUUID   bool
	}{
		{
			name:            "trace ID from request header is reused",
			requestTraceID:  "my-custom-trace-id",
			wantSameTraceID: true,
		},
		{
			name:          "no trace ID in request, UUID generated",
			wantValidUUID: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				// the child logger must be reachable from the request
				assert.NotNil(t, logger.FromRequest(r))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()

			h.withTraceID(next).ServeHTTP(rr, req)

			require.True(t, nextCalled)

			gotTraceID := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, gotTraceID)
			if tt.wantSameTraceID {
				assert.Equal(t, tt.requestTraceID, gotTraceID)
			}
			if tt.wantValidUUID {
				_, err := uuid.Parse(gotTraceID)
				assert.NoError(t, err)
			}
		})
	}
}
