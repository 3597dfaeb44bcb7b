package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
	"github.com/google/uuid"
)

// sessionTokenHeader is the vendor's header for the session credential.
const sessionTokenHeader = "token"

// Client owns one session slot and turns endpoint descriptors into
// dispatched requests with normalized results. Multiple in-flight calls on
// one client are fine, they share only the session slot.
type Client struct {
	config         Config
	logger         Logger
	loggerProvider LoggerProvider
	errorMapper    ErrorMapper
	transport      TransportAdapter
	session        *SessionStore
}

func NewClient(cfg Config, options ...Option) (*Client, error) {
	builder := defaultClientBuilder(cfg)
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&builder)
	}

	provider, logger := glog.Resolve("scooter", builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger("scooter"); named != nil {
			logger = glog.Ensure(named)
		}
	}

	if builder.errorMapper == nil {
		builder.errorMapper = defaultErrorMapper
	}
	if builder.configProvider == nil {
		builder.configProvider = NewCfgxConfigProvider(nil)
	}
	if builder.optionsResolver == nil {
		builder.optionsResolver = GoOptionsResolver{}
	}
	if builder.transport == nil {
		return nil, mapBuildError(builder.errorMapper, goerrors.New(
			"core: transport adapter is required",
			goerrors.CategoryBadInput,
		))
	}
	if builder.session == nil {
		builder.session = NewSessionStore()
	}
	if strings.TrimSpace(builder.sessionToken) != "" {
		builder.session.Set(builder.sessionToken)
	}

	defaults := DefaultConfig()
	loaded, err := builder.configProvider.Load(context.Background(), defaults)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}
	finalConfig, err := builder.optionsResolver.Resolve(defaults, loaded, builder.runtimeConfig)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}

	return &Client{
		config:         finalConfig,
		logger:         logger,
		loggerProvider: provider,
		errorMapper:    builder.errorMapper,
		transport:      builder.transport,
		session:        builder.session,
	}, nil
}

func mapBuildError(mapper ErrorMapper, err error) error {
	if err == nil {
		return nil
	}
	if mapper == nil {
		mapper = defaultErrorMapper
	}
	if mapped := mapper(err); mapped != nil {
		return mapped
	}
	return err
}

func (c *Client) Config() Config {
	return c.config
}

// Session exposes the owned session slot so callers can save the token
// externally; the client itself never persists it.
func (c *Client) Session() *SessionStore {
	return c.session
}

func (c *Client) SessionToken() string {
	return c.session.Get()
}

// SetSessionToken installs a previously obtained token without a network
// round trip. Validity is discovered lazily on the next authenticated call.
func (c *Client) SetSessionToken(token string) error {
	debug := newDebugContext(OperationSetSessionToken)
	if strings.TrimSpace(token) == "" {
		return c.mapError(validationError(debug, "token", "token is required and must be a non-empty string"))
	}
	c.session.Set(token)
	return nil
}

// Login exchanges account credentials for a session token and stores it on
// success. It is the only network operation that does not require a
// session.
func (c *Client) Login(ctx context.Context, req LoginRequest) (string, error) {
	debug := newDebugContext(OperationLogin)
	params := url.Values{}
	params.Set("account", req.Account)
	params.Set("password", req.Password)
	params.Set("countryCode", req.CountryCode)

	envelope, err := c.dispatch(ctx, OperationLogin, params, debug)
	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) && richErr.TextCode == ClientErrorUpstream {
			richErr.Message = "core: login rejected, invalid credentials"
		}
		return "", err
	}

	var data loginData
	if len(envelope.Data) > 0 {
		if decodeErr := json.Unmarshal(envelope.Data, &data); decodeErr != nil {
			return "", c.mapError(protocolError(debug, "core: login response data is not decodable", 0))
		}
	}
	if strings.TrimSpace(data.Token) == "" {
		return "", c.mapError(protocolError(debug, "core: login response carried an empty session token", 0))
	}

	c.session.Set(data.Token)
	return data.Token, nil
}

func (c *Client) Vehicles(ctx context.Context) ([]Vehicle, error) {
	return invokeTyped[[]Vehicle](ctx, c, OperationVehicles, url.Values{})
}

func (c *Client) VehiclePosition(ctx context.Context, sn string) (Position, error) {
	return invokeTyped[Position](ctx, c, OperationVehiclePosition, snParams(sn))
}

func (c *Client) OverallTally(ctx context.Context, sn string) (OverallTally, error) {
	return invokeTyped[OverallTally](ctx, c, OperationOverallTally, snParams(sn))
}

func (c *Client) TrackDetail(ctx context.Context, sn string, trackID string, trackDate string) (TrackDetail, error) {
	params := snParams(sn)
	params.Set("trackId", strings.TrimSpace(trackID))
	params.Set("trackDate", strings.TrimSpace(trackDate))
	return invokeTyped[TrackDetail](ctx, c, OperationTrackDetail, params)
}

// TrackList is the paged response for Tracks; TrackMileage is passed
// through raw, the vendor does not document its unit.
type TrackList struct {
	Items        []Track         `json:"items,omitempty"`
	TrackMileage json.RawMessage `json:"trackMileage,omitempty"`
}

func (c *Client) Tracks(ctx context.Context, sn string, index int, pageSize int) (TrackList, error) {
	params := snParams(sn)
	if index >= 0 {
		params.Set("index", strconv.Itoa(index))
	}
	if pageSize > 0 {
		params.Set("pagesize", strconv.Itoa(pageSize))
	}
	return invokeTyped[TrackList](ctx, c, OperationTracks, params)
}

func (c *Client) BatteryInfo(ctx context.Context, sn string) (BatteryInfo, error) {
	return invokeTyped[BatteryInfo](ctx, c, OperationBatteryInfo, snParams(sn))
}

func (c *Client) BatteryHealth(ctx context.Context, sn string) (BatteryHealth, error) {
	return invokeTyped[BatteryHealth](ctx, c, OperationBatteryHealth, snParams(sn))
}

func (c *Client) BatteryChart(ctx context.Context, sn string, bmsID string) (BatteryChart, error) {
	params := snParams(sn)
	params.Set("bmsId", strings.TrimSpace(bmsID))
	return invokeTyped[BatteryChart](ctx, c, OperationBatteryChart, params)
}

func (c *Client) MotorData(ctx context.Context, sn string) (MotorData, error) {
	return invokeTyped[MotorData](ctx, c, OperationMotorData, snParams(sn))
}

func (c *Client) VehicleDetail(ctx context.Context, sn string) (VehicleDetail, error) {
	return invokeTyped[VehicleDetail](ctx, c, OperationVehicleDetail, snParams(sn))
}

func (c *Client) FirmwareVersion(ctx context.Context, sn string) (FirmwareVersion, error) {
	return invokeTyped[FirmwareVersion](ctx, c, OperationFirmwareVersion, snParams(sn))
}

func (c *Client) UpdateInfo(ctx context.Context, sn string) (UpdateInfo, error) {
	return invokeTyped[UpdateInfo](ctx, c, OperationUpdateInfo, snParams(sn))
}

func snParams(sn string) url.Values {
	params := url.Values{}
	if trimmed := strings.TrimSpace(sn); trimmed != "" {
		params.Set("sn", trimmed)
	}
	return params
}

func invokeTyped[T any](ctx context.Context, c *Client, operation string, params url.Values) (T, error) {
	var out T
	debug := newDebugContext(operation)
	envelope, err := c.dispatch(ctx, operation, params, debug)
	if err != nil {
		return out, err
	}
	if len(envelope.Data) == 0 {
		return out, nil
	}
	if decodeErr := json.Unmarshal(envelope.Data, &out); decodeErr != nil {
		return out, c.mapError(protocolError(
			debug,
			fmt.Sprintf("core: decode %s response data: %v", operation, decodeErr),
			0,
		))
	}
	return out, nil
}

// dispatch runs the descriptor through the full pipeline: field validation,
// auth precondition, request assembly, transport, interpretation. Failures
// are classified in strict order: transport beats protocol beats upstream.
func (c *Client) dispatch(ctx context.Context, operation string, params url.Values, debug debugContext) (Envelope, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	descriptor, err := lookupEndpoint(operation)
	if err != nil {
		return Envelope{}, c.mapError(err)
	}
	if err := descriptor.validateParams(debug, params); err != nil {
		return Envelope{}, c.mapError(err)
	}
	if descriptor.RequiresAuth && c.session.Get() == "" {
		return Envelope{}, c.mapError(sessionRequiredError(debug))
	}

	req := c.buildRequest(descriptor, params)
	res, doErr := c.transport.Do(ctx, req)
	if doErr != nil {
		return Envelope{}, c.mapError(transportFailureError(debug, doErr))
	}

	c.logger.Debug("dispatch complete",
		"operation", operation,
		"request_id", debug.RequestID,
		"status_code", res.StatusCode,
	)

	return c.interpret(debug, res)
}

// buildRequest assembles the transient request envelope. The session token
// is read fresh here, not captured earlier, so a concurrent re-login is
// picked up by requests built after it.
func (c *Client) buildRequest(descriptor Endpoint, params url.Values) TransportRequest {
	base := c.config.APIBaseURL
	if descriptor.Service == ServiceAccount {
		base = c.config.AccountBaseURL
	}

	headers := map[string]string{
		"Accept-Language": c.config.Locale,
	}
	if strings.TrimSpace(c.config.UserAgent) != "" {
		headers["User-Agent"] = c.config.UserAgent
	}
	if token := c.session.Get(); token != "" {
		headers[sessionTokenHeader] = token
	}

	req := TransportRequest{
		Method:               http.MethodGet,
		URL:                  strings.TrimRight(base, "/") + descriptor.Path,
		Headers:              headers,
		Timeout:              c.config.Timeout,
		MaxResponseBodyBytes: c.config.MaxResponseBodyBytes,
	}

	switch descriptor.Style {
	case PayloadForm:
		req.Method = http.MethodPost
		req.Headers["Content-Type"] = "application/x-www-form-urlencoded"
		req.Body = []byte(params.Encode())
	case PayloadQuery:
		query := make(map[string]string, len(params))
		for key := range params {
			query[key] = params.Get(key)
		}
		req.Query = query
	}
	return req
}

func (c *Client) interpret(debug debugContext, res TransportResponse) (Envelope, error) {
	if res.StatusCode == 0 {
		return Envelope{}, c.mapError(protocolError(debug, "core: response is missing an http status code", 0))
	}
	if res.StatusCode != http.StatusOK {
		return Envelope{}, c.mapError(protocolError(
			debug,
			fmt.Sprintf("core: bad request, http status %d", res.StatusCode),
			res.StatusCode,
		))
	}

	body := bytes.TrimSpace(res.Body)
	if len(body) == 0 {
		return Envelope{}, c.mapError(protocolError(debug, "core: no usable response body received", res.StatusCode))
	}
	// A bare `null` (or array/scalar) is valid json that unmarshals into the
	// zero envelope; only an object counts as a received body.
	if body[0] != '{' {
		return Envelope{}, c.mapError(protocolError(debug, "core: response body is not a json object", res.StatusCode))
	}

	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Envelope{}, c.mapError(protocolError(debug, "core: response body is not a json object", res.StatusCode))
	}

	// An absent status field decodes as zero and counts as success, the
	// vendor omits it on some endpoints.
	if envelope.Status != 0 {
		return Envelope{}, c.mapError(upstreamError(debug, envelope, body))
	}
	return envelope, nil
}

func (c *Client) mapError(err error) error {
	if err == nil {
		return nil
	}
	mapper := c.errorMapper
	if mapper == nil {
		mapper = defaultErrorMapper
	}
	if mapped := mapper(err); mapped != nil {
		return mapped
	}
	return err
}

func newDebugContext(operation string) debugContext {
	return debugContext{
		Operation: operation,
		RequestID: uuid.NewString(),
	}
}
