package core

import (
	"fmt"
	"net/url"
	"strings"
)

type PayloadStyle string

const (
	// PayloadForm sends params as an url-encoded POST body.
	PayloadForm PayloadStyle = "form"
	// PayloadQuery sends params on the GET query string.
	PayloadQuery PayloadStyle = "query"
)

type ServiceKind string

const (
	ServiceAccount ServiceKind = "account"
	ServiceAPI     ServiceKind = "api"
)

const (
	OperationLogin           = "login"
	OperationSetSessionToken = "set_session_token"
	OperationVehicles        = "vehicles"
	OperationVehiclePosition = "vehicle_position"
	OperationOverallTally    = "overall_tally"
	OperationTrackDetail     = "track_detail"
	OperationTracks          = "tracks"
	OperationBatteryInfo     = "battery_info"
	OperationBatteryHealth   = "battery_health"
	OperationBatteryChart    = "battery_chart"
	OperationMotorData       = "motor_data"
	OperationVehicleDetail   = "vehicle_detail"
	OperationFirmwareVersion = "firmware_version"
	OperationUpdateInfo      = "update_info"
)

// Endpoint is the static descriptor for one remote operation: where it
// lives, how params travel, and which fields must be present. The accessor
// methods are thin typed wrappers over this table plus one generic
// dispatcher, nothing endpoint-specific lives in the pipeline.
type Endpoint struct {
	Operation      string
	Service        ServiceKind
	Path           string
	Style          PayloadStyle
	RequiredFields []string
	RequiresAuth   bool
}

var endpoints = map[string]Endpoint{
	OperationLogin: {
		Operation:      OperationLogin,
		Service:        ServiceAccount,
		Path:           "/appv2/login",
		Style:          PayloadForm,
		RequiredFields: []string{"account", "password", "countryCode"},
	},
	OperationVehicles: {
		Operation:    OperationVehicles,
		Service:      ServiceAPI,
		Path:         "/motoinfo/list",
		Style:        PayloadForm,
		RequiresAuth: true,
	},
	OperationVehiclePosition: {
		Operation:      OperationVehiclePosition,
		Service:        ServiceAPI,
		Path:           "/motoinfo/currentpos",
		Style:          PayloadForm,
		RequiredFields: []string{"sn"},
		RequiresAuth:   true,
	},
	OperationOverallTally: {
		Operation:      OperationOverallTally,
		Service:        ServiceAPI,
		Path:           "/motoinfo/overallTally",
		Style:          PayloadForm,
		RequiredFields: []string{"sn"},
		RequiresAuth:   true,
	},
	OperationTrackDetail: {
		Operation:      OperationTrackDetail,
		Service:        ServiceAPI,
		Path:           "/motoinfo/track/detail",
		Style:          PayloadForm,
		RequiredFields: []string{"sn", "trackId", "trackDate"},
		RequiresAuth:   true,
	},
	OperationTracks: {
		Operation:      OperationTracks,
		Service:        ServiceAPI,
		Path:           "/v5/track/list/v2",
		Style:          PayloadForm,
		RequiredFields: []string{"sn", "index", "pagesize"},
		RequiresAuth:   true,
	},
	OperationBatteryInfo: {
		Operation:      OperationBatteryInfo,
		Service:        ServiceAPI,
		Path:           "/v3/motor_data/battery_info",
		Style:          PayloadQuery,
		RequiredFields: []string{"sn"},
		RequiresAuth:   true,
	},
	OperationBatteryHealth: {
		Operation:      OperationBatteryHealth,
		Service:        ServiceAPI,
		Path:           "/v3/motor_data/battery_info/health",
		Style:          PayloadQuery,
		RequiredFields: []string{"sn"},
		RequiresAuth:   true,
	},
	OperationBatteryChart: {
		Operation:      OperationBatteryChart,
		Service:        ServiceAPI,
		Path:           "/v3/motor_data/battery_chart",
		Style:          PayloadQuery,
		RequiredFields: []string{"sn", "bmsId"},
		RequiresAuth:   true,
	},
	OperationMotorData: {
		Operation:      OperationMotorData,
		Service:        ServiceAPI,
		Path:           "/v3/motor_data/index_info",
		Style:          PayloadQuery,
		RequiredFields: []string{"sn"},
		RequiresAuth:   true,
	},
	OperationVehicleDetail: {
		Operation:      OperationVehicleDetail,
		Service:        ServiceAPI,
		Path:           "/v5/scooter/detail",
		Style:          PayloadQuery,
		RequiredFields: []string{"sn"},
		RequiresAuth:   true,
	},
	OperationFirmwareVersion: {
		Operation:      OperationFirmwareVersion,
		Service:        ServiceAPI,
		Path:           "/motorinfo/getFirmwareVersion",
		Style:          PayloadForm,
		RequiredFields: []string{"sn"},
		RequiresAuth:   true,
	},
	OperationUpdateInfo: {
		Operation:      OperationUpdateInfo,
		Service:        ServiceAPI,
		Path:           "/motorinfo/getUpdateInfo",
		Style:          PayloadForm,
		RequiredFields: []string{"sn"},
		RequiresAuth:   true,
	},
}

func lookupEndpoint(operation string) (Endpoint, error) {
	descriptor, ok := endpoints[operation]
	if !ok {
		return Endpoint{}, fmt.Errorf("core: operation %q is not registered", operation)
	}
	return descriptor, nil
}

// validateParams walks RequiredFields in declaration order and rejects on
// the first missing or blank field, before any transport call is made.
func (e Endpoint) validateParams(debug debugContext, params url.Values) error {
	for _, field := range e.RequiredFields {
		if strings.TrimSpace(params.Get(field)) == "" {
			return validationError(debug, field, fmt.Sprintf("%s is required", field))
		}
	}
	return nil
}
