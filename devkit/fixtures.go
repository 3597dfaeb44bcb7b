package devkit

import (
	"fmt"
	"net/http"

	"github.com/goliatone/go-scooter/core"
)

// SuccessBody wraps raw data json in the vendor's success envelope.
func SuccessBody(data string) []byte {
	if data == "" {
		data = "null"
	}
	return []byte(fmt.Sprintf(`{"status":0,"desc":"success","data":%s}`, data))
}

// FailureBody is the vendor's domain-failure envelope: transported fine,
// HTTP 200, non-zero embedded status.
func FailureBody(status int, desc string) []byte {
	return []byte(fmt.Sprintf(`{"status":%d,"desc":%q}`, status, desc))
}

func LoginSuccessBody(token string) []byte {
	return SuccessBody(fmt.Sprintf(`{"token":%q}`, token))
}

func OKResponse(body []byte) core.TransportResponse {
	return StatusResponse(http.StatusOK, body)
}

func StatusResponse(statusCode int, body []byte) core.TransportResponse {
	return core.TransportResponse{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       append([]byte(nil), body...),
		Metadata:   map[string]any{"kind": KindFake},
	}
}

// ScriptOK is shorthand for a single successful scripted exchange.
func ScriptOK(data string) TransportScript {
	return TransportScript{Response: OKResponse(SuccessBody(data))}
}

// ScriptErr is shorthand for a transport-level failure.
func ScriptErr(err error) TransportScript {
	return TransportScript{Err: err}
}
