package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubEndpoint(t *testing.T, status int, contentType, body string, calls *int32, seen *Request) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if seen != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestClient_Generate(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		want        Outcome
	}{
		{
			name:        "three alternatives",
			status:      http.StatusOK,
			contentType: "application/json",
			body:        `{"result":"A---B---C"}`,
			want:        Outcome{Alternatives: []string{"A", "B", "C"}},
		},
		{
			name:        "single caption",
			status:      http.StatusOK,
			contentType: "application/json",
			body:        `{"result":"  Just one caption #tag\n"}`,
			want:        Outcome{Alternatives: []string{"Just one caption #tag"}},
		},
		{
			name:        "fallback sentence shown as a caption",
			status:      http.StatusOK,
			contentType: "application/json",
			body:        `{"result":"Sorry, an error occurred."}`,
			want:        Outcome{Alternatives: []string{"Sorry, an error occurred."}},
		},
		{
			name:        "server error message",
			status:      http.StatusInternalServerError,
			contentType: "application/json",
			body:        `{"error":"Failed to contact the AI service"}`,
			want:        Outcome{Alternatives: []string{"Error: Failed to contact the AI service"}, Failed: true},
		},
		{
			name:        "server error without message",
			status:      http.StatusBadGateway,
			contentType: "application/json",
			body:        `{}`,
			want:        Outcome{Alternatives: []string{"Error: " + GenericErrorMessage}, Failed: true},
		},
		{
			name:        "server error with plain text body",
			status:      http.StatusServiceUnavailable,
			contentType: "text/plain",
			body:        "upstream unavailable",
			want:        Outcome{Alternatives: []string{"Error: " + GenericErrorMessage}, Failed: true},
		},
		{
			name:        "unparsable success body",
			status:      http.StatusOK,
			contentType: "application/json",
			body:        `{"result":`,
			want:        Outcome{Alternatives: []string{ConnectErrorMessage}, Failed: true},
		},
		{
			name:        "success without result field",
			status:      http.StatusOK,
			contentType: "application/json",
			body:        `{}`,
			want:        Outcome{Alternatives: []string{ConnectErrorMessage}, Failed: true},
		},
		{
			name:        "success with html body",
			status:      http.StatusOK,
			contentType: "text/html",
			body:        "<html>oops</html>",
			want:        Outcome{Alternatives: []string{ConnectErrorMessage}, Failed: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			srv := stubEndpoint(t, tt.status, tt.contentType, tt.body, &calls, nil)
			defer srv.Close()

			got := New(srv.URL, Options{}).Generate(context.Background(), Request{Description: "d", Platform: "Instagram"})

			assert.Equal(t, tt.want, got)
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		})
	}
}

func TestClient_Generate_SendsAllFields(t *testing.T) {
	var (
		calls int32
		seen  Request
	)
	srv := stubEndpoint(t, http.StatusOK, "application/json", `{"result":"ok"}`, &calls, &seen)
	defer srv.Close()

	req := Request{Description: "Promo akhir tahun", Platform: "LinkedIn", Style: "Professional", Language: "Indonesian"}
	New(srv.URL+"/", Options{}).Generate(context.Background(), req)

	assert.Equal(t, req, seen)
}

func TestClient_Generate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	got := New(url, Options{}).Generate(context.Background(), Request{Description: "d"})

	assert.Equal(t, Outcome{Alternatives: []string{ConnectErrorMessage}, Failed: true}, got)
}

func TestClient_Generate_Cancelled(t *testing.T) {
	var calls int32
	srv := stubEndpoint(t, http.StatusOK, "application/json", `{"result":"late"}`, &calls, nil)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got := New(srv.URL, Options{}).Generate(ctx, Request{Description: "d"})

	assert.True(t, got.Failed)
}

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		name        string
		description string
		loading     bool
		want        bool
	}{
		{"empty", "", false, false},
		{"whitespace only", "  \n\t ", false, false},
		{"text", "Launch day", false, true},
		{"text while loading", "Launch day", true, false},
		{"empty while loading", "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanSubmit(tt.description, tt.loading))
		})
	}
}
