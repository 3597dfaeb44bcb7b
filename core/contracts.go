package core

import (
	"context"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

// TransportRequest is the fully assembled outbound request handed to a
// transport adapter. Body carries an url-encoded form when non-nil.
type TransportRequest struct {
	Method   string
	URL      string
	Headers  map[string]string
	Query    map[string]string
	Body     []byte
	Metadata map[string]any
	Timeout  time.Duration

	MaxResponseBodyBytes int64
}

type TransportResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Metadata   map[string]any
}

// TransportAdapter is the external HTTP collaborator. The pipeline never
// retries: a returned error surfaces exactly once as a transport failure.
type TransportAdapter interface {
	Kind() string
	Do(ctx context.Context, req TransportRequest) (TransportResponse, error)
}

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger
