// Package testings runs a fake gateway for the service tests.
package testings

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"wallex/client"
	"wallex/msync"
)

const (
	MerchantId = 220
	Secret     = "k"
)

type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   string
	Header http.Header
}

// Form parses the body as an ordered form payload.
func (r Request) Form(t *testing.T) client.Fields {
	t.Helper()
	fields, err := client.ParseEncoded(r.Body)
	if err != nil {
		t.Fatalf("body is not a form: %v", err)
	}
	return fields
}

type Reply struct {
	Status int
	Body   string
}

type Gateway struct {
	Server   *httptest.Server
	requests *msync.Mu[[]Request]
	replies  *msync.MuMap[string, Reply]
}

// NewGateway answers every path with 200 {"success":true} unless a reply was
// registered for it.
func NewGateway(t *testing.T) *Gateway {
	t.Helper()
	g := &Gateway{
		requests: msync.NewMu([]Request{}),
		replies:  msync.NewMuMap[string, Reply](),
	}
	g.Server = httptest.NewServer(http.HandlerFunc(g.handle))
	t.Cleanup(g.Server.Close)
	return g
}

func (g *Gateway) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	req := Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Body:   string(body),
		Header: r.Header.Clone(),
	}
	g.requests.Update(func(value []Request) []Request {
		return append(value, req)
	})
	reply, ok := g.replies.Get(r.URL.Path)
	if !ok {
		reply = Reply{Status: http.StatusOK, Body: `{"success":true}`}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.Status)
	_, _ = io.WriteString(w, reply.Body)
}

func (g *Gateway) Reply(path string, status int, body string) {
	g.replies.Set(path, Reply{Status: status, Body: body})
}

func (g *Gateway) Requests() []Request {
	return g.requests.Get()
}

func (g *Gateway) Last(t *testing.T) Request {
	t.Helper()
	requests := g.Requests()
	if len(requests) == 0 {
		t.Fatalf("gateway received no requests")
	}
	return requests[len(requests)-1]
}

func (g *Gateway) Config() *client.Config {
	return &client.Config{
		MerchantId: MerchantId,
		Secret:     Secret,
		BaseUrl:    g.Server.URL,
	}
}
