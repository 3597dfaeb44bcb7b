package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-scooter/core"
)

const KindREST = "rest"

const defaultClientTimeout = 30 * time.Second
const defaultResponseBodyLimit int64 = 2 << 20 // 2 MiB, vendor payloads are small

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RESTAdapter dispatches assembled requests over net/http and hands the raw
// status plus body back to the pipeline. It owns no policy: retries,
// caching, and rate limiting deliberately stay out of this layer.
type RESTAdapter struct {
	Client               HTTPDoer
	DefaultHeaders       map[string]string
	MaxResponseBodyBytes int64
}

func NewRESTAdapter(client HTTPDoer) *RESTAdapter {
	if client == nil {
		client = &http.Client{Timeout: defaultClientTimeout}
	}
	return &RESTAdapter{
		Client:               client,
		DefaultHeaders:       map[string]string{},
		MaxResponseBodyBytes: defaultResponseBodyLimit,
	}
}

func (*RESTAdapter) Kind() string {
	return KindREST
}

func (a *RESTAdapter) Do(ctx context.Context, req core.TransportRequest) (core.TransportResponse, error) {
	if a == nil || a.Client == nil {
		return core.TransportResponse{}, transportError(
			"transport: rest adapter requires an http client",
			goerrors.CategoryInternal,
			http.StatusInternalServerError,
			map[string]any{"adapter": KindREST},
		)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	requestCtx := ctx
	cancel := func() {}
	if req.Timeout > 0 {
		requestCtx, cancel = context.WithTimeout(ctx, req.Timeout)
	}
	defer cancel()

	httpReq, err := a.buildHTTPRequest(requestCtx, req)
	if err != nil {
		return core.TransportResponse{}, err
	}

	startedAt := time.Now().UTC()
	httpRes, err := a.Client.Do(httpReq)
	if err != nil {
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: execute http request",
			http.StatusBadGateway,
			map[string]any{"adapter": KindREST, "method": httpReq.Method, "url": httpReq.URL.String()},
		)
	}
	defer httpRes.Body.Close()

	body, err := a.readBody(httpRes, req.MaxResponseBodyBytes)
	if err != nil {
		return core.TransportResponse{}, err
	}

	return core.TransportResponse{
		StatusCode: httpRes.StatusCode,
		Headers:    flattenHeaders(httpRes.Header),
		Body:       body,
		Metadata: map[string]any{
			"duration_ms": time.Since(startedAt).Milliseconds(),
			"kind":        KindREST,
		},
	}, nil
}

func (a *RESTAdapter) buildHTTPRequest(ctx context.Context, req core.TransportRequest) (*http.Request, error) {
	method := strings.TrimSpace(strings.ToUpper(req.Method))
	if method == "" {
		method = http.MethodGet
	}

	target := strings.TrimSpace(req.URL)
	parsedURL, err := url.Parse(target)
	if err != nil {
		return nil, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"transport: invalid request url",
			http.StatusBadRequest,
			map[string]any{"adapter": KindREST, "url": target},
		)
	}
	if parsedURL.String() == "" {
		return nil, transportError(
			"transport: request url is required",
			goerrors.CategoryBadInput,
			http.StatusBadRequest,
			map[string]any{"adapter": KindREST},
		)
	}

	if len(req.Query) > 0 {
		query := parsedURL.Query()
		for key, value := range req.Query {
			if strings.TrimSpace(key) == "" {
				continue
			}
			query.Set(strings.TrimSpace(key), strings.TrimSpace(value))
		}
		parsedURL.RawQuery = query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, parsedURL.String(), bytes.NewReader(req.Body))
	if err != nil {
		return nil, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"transport: create http request",
			http.StatusBadRequest,
			map[string]any{"adapter": KindREST, "method": method, "url": parsedURL.String()},
		)
	}
	applyHeaders(httpReq, a.DefaultHeaders)
	applyHeaders(httpReq, req.Headers)
	return httpReq, nil
}

func (a *RESTAdapter) readBody(httpRes *http.Response, requestLimit int64) ([]byte, error) {
	limit := resolveBodyLimit(requestLimit, a.MaxResponseBodyBytes)
	body, err := io.ReadAll(io.LimitReader(httpRes.Body, limit+1))
	if err != nil {
		return nil, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: read response body",
			http.StatusBadGateway,
			map[string]any{"adapter": KindREST, "status_code": httpRes.StatusCode},
		)
	}
	if int64(len(body)) > limit {
		return nil, transportError(
			fmt.Sprintf("transport: response body exceeds limit of %d bytes", limit),
			goerrors.CategoryExternal,
			http.StatusBadGateway,
			map[string]any{
				"adapter":          KindREST,
				"status_code":      httpRes.StatusCode,
				"response_limit_b": limit,
			},
		)
	}
	return body, nil
}

func applyHeaders(httpReq *http.Request, headers map[string]string) {
	for key, value := range headers {
		if strings.TrimSpace(key) == "" {
			continue
		}
		httpReq.Header.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
}

func flattenHeaders(headers http.Header) map[string]string {
	if len(headers) == 0 {
		return map[string]string{}
	}
	flat := make(map[string]string, len(headers))
	for key, values := range headers {
		flat[key] = strings.Join(values, ",")
	}
	return flat
}

func resolveBodyLimit(requestLimit int64, adapterLimit int64) int64 {
	if requestLimit > 0 {
		return requestLimit
	}
	if adapterLimit > 0 {
		return adapterLimit
	}
	return defaultResponseBodyLimit
}

var _ core.TransportAdapter = (*RESTAdapter)(nil)
