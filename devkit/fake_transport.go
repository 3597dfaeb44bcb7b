// Package devkit carries test doubles and canned vendor payloads for the
// go-scooter client. It is importable by downstream consumers that need a
// scripted transport in their own tests.
package devkit

import (
	"context"
	"fmt"
	"sync"

	"github.com/goliatone/go-scooter/core"
)

const KindFake = "fake"

// TransportScript is one scripted exchange: the response to hand back, or
// the error to fail with. Scripts are consumed in call order; the last one
// repeats once the script runs out.
type TransportScript struct {
	Response core.TransportResponse
	Err      error
}

type FakeTransport struct {
	mu       sync.Mutex
	scripts  []TransportScript
	requests []core.TransportRequest
}

func NewFakeTransport(scripts ...TransportScript) *FakeTransport {
	return &FakeTransport{
		scripts: append([]TransportScript(nil), scripts...),
	}
}

func (*FakeTransport) Kind() string {
	return KindFake
}

func (t *FakeTransport) Do(_ context.Context, req core.TransportRequest) (core.TransportResponse, error) {
	if t == nil {
		return core.TransportResponse{}, fmt.Errorf("devkit: fake transport is nil")
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.requests = append(t.requests, cloneRequest(req))
	index := len(t.requests) - 1
	if index < len(t.scripts) {
		script := t.scripts[index]
		return cloneResponse(script.Response), script.Err
	}
	if len(t.scripts) > 0 {
		last := t.scripts[len(t.scripts)-1]
		return cloneResponse(last.Response), last.Err
	}
	return core.TransportResponse{
		StatusCode: 200,
		Headers:    map[string]string{},
		Body:       SuccessBody(`{}`),
		Metadata:   map[string]any{"kind": KindFake},
	}, nil
}

// Requests returns a copy of every request the fake has seen, in order.
func (t *FakeTransport) Requests() []core.TransportRequest {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]core.TransportRequest, 0, len(t.requests))
	for _, item := range t.requests {
		out = append(out, cloneRequest(item))
	}
	return out
}

func (t *FakeTransport) CallCount() int {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.requests)
}

func cloneRequest(in core.TransportRequest) core.TransportRequest {
	out := core.TransportRequest{
		Method:               in.Method,
		URL:                  in.URL,
		Headers:              map[string]string{},
		Query:                map[string]string{},
		Body:                 append([]byte(nil), in.Body...),
		Metadata:             map[string]any{},
		Timeout:              in.Timeout,
		MaxResponseBodyBytes: in.MaxResponseBodyBytes,
	}
	for key, value := range in.Headers {
		out.Headers[key] = value
	}
	for key, value := range in.Query {
		out.Query[key] = value
	}
	for key, value := range in.Metadata {
		out.Metadata[key] = value
	}
	return out
}

func cloneResponse(in core.TransportResponse) core.TransportResponse {
	out := core.TransportResponse{
		StatusCode: in.StatusCode,
		Headers:    map[string]string{},
		Body:       append([]byte(nil), in.Body...),
		Metadata:   map[string]any{},
	}
	for key, value := range in.Headers {
		out.Headers[key] = value
	}
	for key, value := range in.Metadata {
		out.Metadata[key] = value
	}
	return out
}

var _ core.TransportAdapter = (*FakeTransport)(nil)
