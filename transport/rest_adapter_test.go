package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-scooter/core"
)

func TestRESTAdapter_SendsFormBodyAndHeaders(t *testing.T) {
	var captured struct {
		method      string
		path        string
		header      http.Header
		form        url.Values
		contentType string
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.header = r.Header.Clone()
		captured.contentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		captured.form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":0}`))
	}))
	defer server.Close()

	adapter := NewRESTAdapter(server.Client())
	adapter.DefaultHeaders["User-Agent"] = "go-scooter-test"

	res, err := adapter.Do(context.Background(), core.TransportRequest{
		Method: http.MethodPost,
		URL:    server.URL + "/motoinfo/currentpos",
		Headers: map[string]string{
			"Content-Type":    "application/x-www-form-urlencoded",
			"Accept-Language": "en-US",
			"token":           "T123",
		},
		Body: []byte("sn=sn-1"),
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if string(res.Body) != `{"status":0}` {
		t.Fatalf("unexpected body %q", res.Body)
	}
	if captured.method != http.MethodPost || captured.path != "/motoinfo/currentpos" {
		t.Fatalf("unexpected request %s %s", captured.method, captured.path)
	}
	if captured.form.Get("sn") != "sn-1" {
		t.Fatalf("expected form field sn, got %v", captured.form)
	}
	if captured.header.Get("token") != "T123" {
		t.Fatalf("expected session token header, got %q", captured.header.Get("token"))
	}
	if captured.header.Get("User-Agent") != "go-scooter-test" {
		t.Fatalf("expected default header to apply, got %q", captured.header.Get("User-Agent"))
	}
}

func TestRESTAdapter_AppendsQueryParams(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"status":0}`))
	}))
	defer server.Close()

	adapter := NewRESTAdapter(server.Client())
	_, err := adapter.Do(context.Background(), core.TransportRequest{
		URL:   server.URL + "/v3/motor_data/battery_info",
		Query: map[string]string{"sn": "sn-1"},
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotQuery.Get("sn") != "sn-1" {
		t.Fatalf("expected sn query param, got %v", gotQuery)
	}
}

func TestRESTAdapter_PassesStatusCodeThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	adapter := NewRESTAdapter(server.Client())
	res, err := adapter.Do(context.Background(), core.TransportRequest{URL: server.URL})
	if err != nil {
		t.Fatalf("non-2xx must not be a transport error, got %v", err)
	}
	if res.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502 passthrough, got %d", res.StatusCode)
	}
}

func TestRESTAdapter_NetworkFailureIsExternal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	serverURL := server.URL
	server.Close()

	adapter := NewRESTAdapter(nil)
	_, err := adapter.Do(context.Background(), core.TransportRequest{URL: serverURL})
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		t.Fatalf("expected go-errors type, got %T", err)
	}
	if richErr.Category != goerrors.CategoryExternal {
		t.Fatalf("expected external category, got %q", richErr.Category)
	}
	if richErr.TextCode != core.ClientErrorTransport {
		t.Fatalf("expected transport text code, got %q", richErr.TextCode)
	}
}

func TestRESTAdapter_InvalidURLIsBadInput(t *testing.T) {
	adapter := NewRESTAdapter(http.DefaultClient)
	_, err := adapter.Do(context.Background(), core.TransportRequest{URL: "://bad"})
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		t.Fatalf("expected go-errors type, got %T", err)
	}
	if richErr.Category != goerrors.CategoryBadInput {
		t.Fatalf("expected bad input category, got %q", richErr.Category)
	}
}

func TestRESTAdapter_EnforcesBodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer server.Close()

	adapter := NewRESTAdapter(server.Client())
	_, err := adapter.Do(context.Background(), core.TransportRequest{
		URL:                  server.URL,
		MaxResponseBodyBytes: 16,
	})
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		t.Fatalf("expected go-errors type, got %T", err)
	}
	if !strings.Contains(richErr.Message, "exceeds limit") {
		t.Fatalf("expected body limit error, got %q", richErr.Message)
	}
}
