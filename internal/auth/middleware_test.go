package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentify(t *testing.T) {
	tokens, err := NewJWTService([]byte("secret"))
	require.NoError(t, err)
	valid, err := tokens.CreateToken("ada@example.com", time.Hour)
	require.NoError(t, err)
	expired, err := tokens.CreateToken("ada@example.com", -time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name      string
		header    string
		wantEmail string
	}{
		{name: "no header"},
		{name: "valid bearer", header: "Bearer " + valid, wantEmail: "ada@example.com"},
		{name: "expired", header: "Bearer " + expired},
		{name: "garbage", header: "Bearer garbage"},
		{name: "wrong scheme", header: "Basic " + valid},
	}

	mw := NewMiddleware(tokens)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotEmail string
			var gotOK bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotEmail, gotOK = GetUserEmailFromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/courses", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			mw.Identify(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNoContent, rec.Code, "request is never rejected")
			assert.Equal(t, tt.wantEmail != "", gotOK)
			assert.Equal(t, tt.wantEmail, gotEmail)
		})
	}
}
