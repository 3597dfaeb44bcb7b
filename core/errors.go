package core

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ClientErrorBadInput  = "SCOOTER_BAD_INPUT"
	ClientErrorNoSession = "SCOOTER_NO_SESSION"
	ClientErrorTransport = "SCOOTER_TRANSPORT_FAILURE"
	ClientErrorProtocol  = "SCOOTER_PROTOCOL_ERROR"
	ClientErrorUpstream  = "SCOOTER_UPSTREAM_ERROR"
	ClientErrorInternal  = "SCOOTER_INTERNAL_ERROR"
)

// debugContext stamps every rejection with the originating operation, a
// capture-time timestamp, and the per-dispatch correlation id so callers
// can line up failures across concurrent calls.
type debugContext struct {
	Operation string
	RequestID string
}

func (d debugContext) metadata() map[string]any {
	meta := map[string]any{
		"operation": d.Operation,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	}
	if strings.TrimSpace(d.RequestID) != "" {
		meta["request_id"] = d.RequestID
	}
	return meta
}

func validationError(debug debugContext, field string, message string) error {
	meta := debug.metadata()
	meta["field"] = field
	return goerrors.NewValidation("core: validation failed: "+message, goerrors.FieldError{
		Field:   field,
		Message: message,
	}).
		WithCode(http.StatusBadRequest).
		WithTextCode(ClientErrorBadInput).
		WithSeverity(goerrors.SeverityError).
		WithMetadata(meta)
}

func sessionRequiredError(debug debugContext) error {
	return goerrors.New(
		"core: no valid session token, call Login or SetSessionToken first",
		goerrors.CategoryAuth,
	).
		WithCode(http.StatusUnauthorized).
		WithTextCode(ClientErrorNoSession).
		WithMetadata(debug.metadata())
}

func transportFailureError(debug debugContext, cause error) error {
	return goerrors.Wrap(cause, goerrors.CategoryExternal, "core: transport request failed").
		WithCode(http.StatusBadGateway).
		WithTextCode(ClientErrorTransport).
		WithMetadata(debug.metadata())
}

func protocolError(debug debugContext, message string, statusCode int) error {
	meta := debug.metadata()
	if statusCode > 0 {
		meta["status_code"] = statusCode
	}
	return goerrors.New(message, goerrors.CategoryExternal).
		WithCode(http.StatusBadGateway).
		WithTextCode(ClientErrorProtocol).
		WithMetadata(meta)
}

// upstreamError classifies a well-formed 200 response whose embedded status
// signals failure. The full raw body rides along in metadata because it
// carries vendor-specific error codes the caller may need to inspect.
func upstreamError(debug debugContext, envelope Envelope, body []byte) error {
	message := fmt.Sprintf("core: upstream rejected request with status %d", envelope.Status)
	if strings.TrimSpace(envelope.Desc) != "" {
		message = fmt.Sprintf("%s: %s", message, envelope.Desc)
	}
	meta := debug.metadata()
	meta["upstream_status"] = envelope.Status
	if strings.TrimSpace(envelope.Desc) != "" {
		meta["desc"] = envelope.Desc
	}
	meta["body"] = json.RawMessage(append([]byte(nil), body...))
	return goerrors.New(message, goerrors.CategoryOperation).
		WithCode(http.StatusBadGateway).
		WithTextCode(ClientErrorUpstream).
		WithMetadata(meta)
}

func clientErrorMapper(err error) *goerrors.Error {
	if err == nil {
		return nil
	}

	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return ensureClientErrorEnvelope(richErr)
	}

	mapped := goerrors.MapToError(err, goerrors.DefaultErrorMappers())
	return ensureClientErrorEnvelope(mapped)
}

func ensureClientErrorEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if err.Code == 0 {
		err.Code = clientHTTPStatus(err.Category)
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = defaultClientTextCode(err.Category)
	}
	if err.Category == goerrors.CategoryInternal && strings.TrimSpace(err.Message) == "" {
		err.Message = "An unexpected error occurred"
	}
	return err
}

func defaultClientTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return ClientErrorBadInput
	case goerrors.CategoryAuth, goerrors.CategoryAuthz:
		return ClientErrorNoSession
	case goerrors.CategoryExternal:
		return ClientErrorTransport
	case goerrors.CategoryOperation:
		return ClientErrorUpstream
	default:
		return ClientErrorInternal
	}
}

func clientHTTPStatus(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return http.StatusBadRequest
	case goerrors.CategoryAuth:
		return http.StatusUnauthorized
	case goerrors.CategoryAuthz:
		return http.StatusForbidden
	case goerrors.CategoryExternal, goerrors.CategoryOperation:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
