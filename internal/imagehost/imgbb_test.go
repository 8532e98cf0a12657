package imagehost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	outcomes []string
}

func (o *recordingObserver) RecordImageUpload(outcome string, _ time.Duration) {
	o.outcomes = append(o.outcomes, outcome)
}

func TestUpload_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "aGVsbG8=", r.PostForm.Get("image"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"status":200,"data":{"url":"https://i.ibb.co/abc/course.png","display_url":"https://ibb.co/abc"}}`))
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	client := NewClient(srv.URL, "test-key", 5*time.Second, obs)

	got, err := client.Upload(context.Background(), "data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "https://i.ibb.co/abc/course.png", got)
	assert.Equal(t, []string{"success"}, obs.outcomes)
}

func TestUpload_FallsBackToDisplayURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"display_url":"https://ibb.co/xyz"}}`))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL, "k", 0, nil).Upload(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "https://ibb.co/xyz", got)
}

func TestUpload_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"non-2xx", http.StatusBadRequest, `{"status_code":400,"error":{"message":"Invalid API v1 key."}}`, "status 400"},
		{"rejected", http.StatusOK, `{"success":false,"error":{"message":"Empty upload source."}}`, "Empty upload source."},
		{"no url", http.StatusOK, `{"success":true,"data":{}}`, "no url"},
		{"bad json", http.StatusOK, `<html>`, "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			obs := &recordingObserver{}
			_, err := NewClient(srv.URL, "k", time.Second, obs).Upload(context.Background(), "aGVsbG8=")
			assert.ErrorContains(t, err, tt.wantErr)
			assert.Equal(t, []string{"failure"}, obs.outcomes)
		})
	}
}

func TestUpload_RejectsBeforeCalling(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", time.Second, nil).Upload(context.Background(), "aGVsbG8=")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = NewClient(srv.URL, "k", time.Second, nil).Upload(context.Background(), "data:image/png;base64,")
	assert.ErrorIs(t, err, ErrEmptyImage)

	assert.False(t, called)
}
