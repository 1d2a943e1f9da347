package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method      string
	path        string
	query       string
	body        string
	contentType string
	accept      string
	apiKey      string
}

func newTestServer(t *testing.T, status int, reply string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.body = string(body)
		rec.contentType = r.Header.Get("Content-Type")
		rec.accept = r.Header.Get("Accept")
		rec.apiKey = r.Header.Get("X-Api-Key")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(server.Close)
	return server, rec
}

func TestGet(t *testing.T) {
	server, rec := newTestServer(t, http.StatusOK, `{"success":true,"items":[1,2]}`)
	c := NewHttpClient(server.URL, "")

	resp, err := c.Get(context.Background(), "/exchange/offers", map[string]string{"id": "220"})
	require.NoError(t, err)

	assert.Equal(t, true, resp["success"])
	assert.Len(t, resp["items"], 2)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/exchange/offers", rec.path)
	assert.Equal(t, "id=220", rec.query)
	assert.Equal(t, "application/json", rec.accept)
	assert.Empty(t, rec.apiKey)
}

func TestApiKeyHeader(t *testing.T) {
	server, rec := newTestServer(t, http.StatusOK, `{}`)
	c := NewHttpClient(server.URL, "api-key")

	_, err := c.Get(context.Background(), "/exchange/get", nil)
	require.NoError(t, err)
	assert.Equal(t, "api-key", rec.apiKey)
}

func TestPostForm(t *testing.T) {
	server, rec := newTestServer(t, http.StatusOK, `{"id":7}`)
	c := NewHttpClient(server.URL, "")

	resp, err := c.PostForm(context.Background(), "/exchange/buy", "id=1&buyId=2")
	require.NoError(t, err)

	assert.Equal(t, float64(7), resp["id"])
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "id=1&buyId=2", rec.body)
	assert.Equal(t, "application/x-www-form-urlencoded", rec.contentType)
}

func TestPostJson(t *testing.T) {
	server, rec := newTestServer(t, http.StatusOK, `{"ok":true}`)
	c := NewHttpClient(server.URL, "")

	payload := struct {
		Merchant int    `json:"merchant"`
		Sign     string `json:"sign"`
	}{Merchant: 220, Sign: "abc"}
	_, err := c.PostJson(context.Background(), "/payout/list", payload)
	require.NoError(t, err)

	assert.Contains(t, rec.contentType, "application/json")
	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(rec.body), &sent))
	assert.Equal(t, map[string]any{"merchant": float64(220), "sign": "abc"}, sent)
}

func TestErrorStatusIsTransportError(t *testing.T) {
	server, _ := newTestServer(t, http.StatusUnprocessableEntity, `{"error":"bad sign"}`)
	c := NewHttpClient(server.URL, "")

	_, err := c.PostForm(context.Background(), "/exchange/create/220", "a=b")
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.False(t, IsDecode(err))

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusUnprocessableEntity, transportErr.StatusCode)
	assert.Equal(t, `{"error":"bad sign"}`, transportErr.Body)
	assert.Contains(t, err.Error(), "status 422")
}

func TestInvalidJsonIsDecodeError(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"html", "<html>oops</html>"},
		{"array", "[1,2,3]"},
		{"null", "null"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newTestServer(t, http.StatusOK, tt.reply)
			c := NewHttpClient(server.URL, "")

			_, err := c.Get(context.Background(), "/exchange/address", nil)
			require.Error(t, err)
			assert.True(t, IsDecode(err))
			assert.False(t, IsTransport(err))

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.reply, decodeErr.Body)
		})
	}
}

func TestUnreachableIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c := NewHttpClient(url, "")
	_, err := c.Get(context.Background(), "/exchange/get", nil)
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 0, transportErr.StatusCode)
	assert.NotNil(t, transportErr.Unwrap())
}

func TestCanceledContext(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, `{}`)
	c := NewHttpClient(server.URL, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Get(ctx, "/exchange/get", nil)
	require.Error(t, err)
	assert.True(t, IsTransport(err))
}
