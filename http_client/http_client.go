package httpclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	fastshot "github.com/opus-domini/fast-shot"
	"github.com/opus-domini/fast-shot/constant/mime"
)

const (
	apiKeyHeader    = "X-Api-Key"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// Response is a decoded gateway reply, returned without schema checks.
type Response = map[string]any

type HttpClient struct {
	client  fastshot.ClientHttpMethods
	baseUrl string
}

func NewHttpClient(baseUrl string, apiKey string) *HttpClient {
	builder := fastshot.NewClient(baseUrl).
		Header().AddAccept(mime.JSON)
	if apiKey != "" {
		builder = builder.Header().Add(apiKeyHeader, apiKey)
	}
	return &HttpClient{client: builder.Build(), baseUrl: baseUrl}
}

func (c *HttpClient) BaseUrl() string {
	return c.baseUrl
}

func (c *HttpClient) Get(ctx context.Context, path string, query map[string]string) (Response, error) {
	slog.Debug("[HttpClient] Making request", "method", http.MethodGet, "path", path)
	fastResp, err := c.client.GET(path).
		Context().Set(ctx).
		Query().AddParams(query).
		Send()
	return c.handle(http.MethodGet, path, fastResp, err)
}

// PostForm sends an already encoded application/x-www-form-urlencoded body.
func (c *HttpClient) PostForm(ctx context.Context, path string, form string) (Response, error) {
	slog.Debug("[HttpClient] Making request", "method", http.MethodPost, "path", path, "encoding", "form")
	fastResp, err := c.client.POST(path).
		Context().Set(ctx).
		Header().Add("Content-Type", contentTypeForm).
		Body().AsString(form).
		Send()
	return c.handle(http.MethodPost, path, fastResp, err)
}

func (c *HttpClient) PostJson(ctx context.Context, path string, payload any) (Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("[HttpClient] Failed to marshal payload", "path", path, "error", err)
		return nil, err
	}
	slog.Debug("[HttpClient] Making request", "method", http.MethodPost, "path", path, "encoding", "json")
	fastResp, err := c.client.POST(path).
		Context().Set(ctx).
		Header().AddContentType(mime.JSON).
		Body().AsString(string(body)).
		Send()
	return c.handle(http.MethodPost, path, fastResp, err)
}

func (c *HttpClient) handle(method string, path string, fastResp *fastshot.Response, err error) (Response, error) {
	if err != nil {
		slog.Error("[HttpClient] Failed to send request", "method", method, "path", path, "error", err)
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	body, err := fastResp.Body().AsString()
	if err != nil {
		slog.Error("[HttpClient] Failed to read response body", "method", method, "path", path, "error", err)
		return nil, &TransportError{Method: method, Path: path, StatusCode: fastResp.Status().Code(), Err: err}
	}
	status := fastResp.Status().Code()
	if status < 200 || status >= 300 {
		slog.Error("[HttpClient] Gateway returned error status", "method", method, "path", path, "status", status)
		return nil, &TransportError{Method: method, Path: path, StatusCode: status, Body: body}
	}
	return readJson(path, body)
}

func readJson(path string, body string) (Response, error) {
	var data Response
	err := json.Unmarshal([]byte(body), &data)
	if err != nil {
		slog.Error("[HttpClient] Failed to decode response", "path", path, "error", err)
		return nil, &DecodeError{Path: path, Body: body, Err: err}
	}
	if data == nil {
		return nil, &DecodeError{Path: path, Body: body, Err: errNotAnObject}
	}
	return data, nil
}
