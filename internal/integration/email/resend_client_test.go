package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubmanager/backend/internal/application/adapter"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

func TestResendClient_Send(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email-123"}`))
	}))
	defer server.Close()

	client, err := NewResendClient("re_test", server.URL, "Hub Manager", "noreply@hub.test")
	require.NoError(t, err)

	result, err := client.Send(context.Background(), adapter.SendEmailInput{
		To:      "ana@hub.test",
		Subject: "Cuenta aprobada",
		HTML:    "<p>hola</p>",
		Text:    "hola",
	})
	require.NoError(t, err)
	assert.Equal(t, "email-123", result.ProviderID)
	assert.Equal(t, "Hub Manager <noreply@hub.test>", received["from"])
	assert.Equal(t, []any{"ana@hub.test"}, received["to"])
}

func TestResendClient_ClassifiesFailures(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		message   string
		permanent bool
	}{
		{"validation error", http.StatusUnprocessableEntity, "Invalid `to` field", true},
		{"rate limited", http.StatusTooManyRequests, "Too many requests", false},
		{"server error", http.StatusInternalServerError, "Internal server error", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"statusCode": tt.status,
					"name":       "error",
					"message":    tt.message,
				})
			}))
			defer server.Close()

			client, err := NewResendClient("re_test", server.URL, "Hub Manager", "noreply@hub.test")
			require.NoError(t, err)

			_, err = client.Send(context.Background(), adapter.SendEmailInput{To: "ana@hub.test", Subject: "x", Text: "x"})
			require.Error(t, err)
			assert.Equal(t, tt.permanent, domainerror.IsPermanentEmailFailure(err))
		})
	}
}

func TestIsPermanentError(t *testing.T) {
	assert.False(t, isPermanentError(nil))
	assert.True(t, isPermanentError(errors.New("[ERROR]: The from field is invalid")))
	assert.False(t, isPermanentError(context.DeadlineExceeded))
}
