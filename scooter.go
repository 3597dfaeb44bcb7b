// Package scooter is a typed client for the scooter-cloud vehicle telemetry
// API. It re-exports the core surface and wires a default REST transport.
package scooter

import (
	"github.com/goliatone/go-scooter/core"
	"github.com/goliatone/go-scooter/transport"
)

type Config = core.Config

type Option = core.Option

type Client = core.Client

type SessionStore = core.SessionStore

type TransportAdapter = core.TransportAdapter
type TransportRequest = core.TransportRequest
type TransportResponse = core.TransportResponse

type Logger = core.Logger
type LoggerProvider = core.LoggerProvider

type Envelope = core.Envelope
type LoginRequest = core.LoginRequest
type Vehicle = core.Vehicle
type VehicleDetail = core.VehicleDetail
type VehicleSnapshot = core.VehicleSnapshot
type Position = core.Position
type OverallTally = core.OverallTally
type Track = core.Track
type TrackList = core.TrackList
type TrackDetail = core.TrackDetail
type TrackPoint = core.TrackPoint
type BatteryInfo = core.BatteryInfo
type BatteryCompartment = core.BatteryCompartment
type BatteryHealth = core.BatteryHealth
type BatteryChart = core.BatteryChart
type MotorData = core.MotorData
type FirmwareVersion = core.FirmwareVersion
type UpdateInfo = core.UpdateInfo

var (
	WithLogger          = core.WithLogger
	WithLoggerProvider  = core.WithLoggerProvider
	WithErrorMapper     = core.WithErrorMapper
	WithConfigProvider  = core.WithConfigProvider
	WithOptionsResolver = core.WithOptionsResolver
	WithTransport       = core.WithTransport
	WithSessionStore    = core.WithSessionStore
	WithSessionToken    = core.WithSessionToken
)

func DefaultConfig() Config {
	return core.DefaultConfig()
}

func NewSessionStore() *SessionStore {
	return core.NewSessionStore()
}

// New builds a client over the default net/http REST transport. Pass
// WithTransport to substitute your own adapter, it wins over the default.
func New(cfg Config, options ...Option) (*Client, error) {
	merged := make([]Option, 0, len(options)+1)
	merged = append(merged, core.WithTransport(transport.NewRESTAdapter(nil)))
	merged = append(merged, options...)
	return core.NewClient(cfg, merged...)
}
