package core

import "encoding/json"

// Envelope is the vendor's uniform response body. Status zero (or absent)
// means success; anything else is an application-level failure. Data is
// opaque to the pipeline, accessors decode it per endpoint. Trace is kept
// as raw passthrough, the vendor does not document its shape.
type Envelope struct {
	Status int             `json:"status"`
	Desc   string          `json:"desc,omitempty"`
	Trace  json.RawMessage `json:"trace,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}

type LoginRequest struct {
	Account  string
	Password string
	// CountryCode is the calling code without leading zeros or plus sign,
	// e.g. "49" for Germany.
	CountryCode string
}

type loginData struct {
	Token string `json:"token"`
}

// Vehicle is one registered scooter. Fields mirror the vendor payload;
// undocumented members stay raw so callers can still reach them.
type Vehicle struct {
	SN       string `json:"sn"`
	Name     string `json:"name,omitempty"`
	Type     string `json:"type,omitempty"`
	FrameNo  string `json:"frameNo,omitempty"`
	EngineNo string `json:"engineNo,omitempty"`
	IsMaster bool   `json:"isMaster,omitempty"`

	IsDefault json.RawMessage `json:"isDefault,omitempty"`
}

type Position struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp int64   `json:"timestamp,omitempty"`

	Gps          json.RawMessage `json:"gps,omitempty"`
	GpsPrecision json.RawMessage `json:"gpsPrecision,omitempty"`
}

type OverallTally struct {
	BindDaysCount int     `json:"bindDaysCount"`
	TotalMileage  float64 `json:"totalMileage"`
}

type TrackPoint struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Date int64   `json:"date,omitempty"`
}

type TrackDetail struct {
	TrackItems []TrackPoint `json:"trackItems,omitempty"`
	StartPoint *TrackPoint  `json:"startPoint,omitempty"`
	LastPoint  *TrackPoint  `json:"lastPoint,omitempty"`
	StartTime  string       `json:"startTime,omitempty"`
	LastDate   string       `json:"lastDate,omitempty"`
}

type Track struct {
	ID         string  `json:"id,omitempty"`
	TrackID    string  `json:"trackId,omitempty"`
	StartTime  int64   `json:"startTime,omitempty"`
	EndTime    int64   `json:"endTime,omitempty"`
	Distance   float64 `json:"distance,omitempty"`
	AvgSpeed   float64 `json:"avespeed,omitempty"`
	RidingTime int64   `json:"ridingtime,omitempty"`
	Date       int64   `json:"date,omitempty"`

	Meet json.RawMessage `json:"meet_count,omitempty"`
}

type BatteryCompartment struct {
	BMSID           string `json:"bmsId,omitempty"`
	IsConnected     bool   `json:"isConnected"`
	BatteryCharging int    `json:"batteryCharging"`
	ChargedTimes    string `json:"chargedTimes,omitempty"`
	Temperature     int    `json:"temperature,omitempty"`
	TemperatureDesc string `json:"temperatureDesc,omitempty"`
	GradeBattery    string `json:"gradeBattery,omitempty"`
}

type BatteryInfo struct {
	Batteries        map[string]BatteryCompartment `json:"batteries,omitempty"`
	IsCharging       int                           `json:"isCharging"`
	EstimatedMileage int                           `json:"estimatedMileage,omitempty"`

	CentreCtrlBattery json.RawMessage `json:"centreCtrlBattery,omitempty"`
	BatteryDetail     json.RawMessage `json:"batteryDetail,omitempty"`
}

type BatteryHealthRecord struct {
	Result       string `json:"result,omitempty"`
	ChargeCount  string `json:"chargeCount,omitempty"`
	Color        string `json:"color,omitempty"`
	Time         int64  `json:"time,omitempty"`
	Name         string `json:"name,omitempty"`
	GradeBattery string `json:"gradeBattery,omitempty"`
}

type BatteryHealthCompartment struct {
	BMSID         string                `json:"bmsId,omitempty"`
	IsConnected   bool                  `json:"isConnected"`
	GradeBattery  string                `json:"gradeBattery,omitempty"`
	Faults        json.RawMessage       `json:"faults,omitempty"`
	HealthRecords []BatteryHealthRecord `json:"healthRecords,omitempty"`
}

type BatteryHealth struct {
	Batteries       map[string]BatteryHealthCompartment `json:"batteries,omitempty"`
	IsDoubleBattery bool                                `json:"isDoubleBattery"`
}

type BatteryChart struct {
	Items1 json.RawMessage `json:"items1,omitempty"`
	Items2 json.RawMessage `json:"items2,omitempty"`
}

type MotorData struct {
	IsCharging        int       `json:"isCharging"`
	LockStatus        int       `json:"lockStatus"`
	IsAccOn           int       `json:"isAccOn"`
	IsFortificationOn string    `json:"isFortificationOn,omitempty"`
	IsConnected       bool      `json:"isConnected"`
	Position          *Position `json:"postion,omitempty"`
	HDOP              int       `json:"hdb,omitempty"`
	Time              int64     `json:"time,omitempty"`
	EstimatedMileage  int       `json:"estimatedMileage,omitempty"`
	CentreCtrlBattery string    `json:"centreCtrlBattery,omitempty"`

	Batteries json.RawMessage `json:"batteries,omitempty"`
	LeftTime  json.RawMessage `json:"leftTime,omitempty"`
	SS        json.RawMessage `json:"ss,omitempty"`
}

type VehicleDetail struct {
	SN          string `json:"sn"`
	Name        string `json:"scooterName,omitempty"`
	ProductType string `json:"productType,omitempty"`
	CarFrameNo  string `json:"carFrameNo,omitempty"`
	Mileage     int    `json:"mileage,omitempty"`
	IsMaster    bool   `json:"isMaster,omitempty"`

	Extra json.RawMessage `json:"extra,omitempty"`
}

type FirmwareVersion struct {
	NowStatus       string `json:"nowStatus,omitempty"`
	Version         string `json:"version,omitempty"`
	HardVersion     string `json:"hardVersion,omitempty"`
	ProtocolVersion string `json:"ss_protocol_ver,omitempty"`
	ByteSize        string `json:"byte_size,omitempty"`
	Date            int64  `json:"date,omitempty"`
}

type UpdateInfo struct {
	CSQ             string `json:"csq,omitempty"`
	Date            int64  `json:"date,omitempty"`
	IsSupportUpdate bool   `json:"isSupportUpdate"`
}

// VehicleSnapshot bundles the concurrent fleet fetch results for one
// vehicle.
type VehicleSnapshot struct {
	Vehicle  Vehicle
	Position *Position
	Battery  *BatteryInfo
}
