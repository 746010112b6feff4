package domain

import "github.com/phee464/Lnw-web-hamhub/pkg/geo"

// Coordinate is re-exported from pkg/geo for convenience
type Coordinate = geo.Coordinate

// TransportMode identifies a way of getting around Bangkok. The set is
// closed; anything outside it is rejected with ErrUnknownMode.
type TransportMode string

const (
	ModeCar        TransportMode = "car"
	ModeMotorcycle TransportMode = "motorcycle"
	ModePublic     TransportMode = "public"
	ModeBTSMRT     TransportMode = "bts_mrt"
)

// WaitsForService reports whether the mode involves walking to a stop and
// waiting for a vehicle, which adds a fixed buffer on top of travel time.
func (m TransportMode) WaitsForService() bool {
	return m == ModePublic || m == ModeBTSMRT
}

// CostModel is a flat-fare-plus-distance pricing curve in baht.
type CostModel struct {
	Base  float64 `json:"base"`
	PerKm float64 `json:"per_km"`
}

// TransportProfile holds the static per-mode tuning constants.
//
// TrafficFactor and RainFactor are in (0,1]; a higher value means the mode is
// less affected by congestion or rain respectively. Reliability is a trust
// score in [0,1] describing how predictable the mode's travel time is.
type TransportProfile struct {
	Mode          TransportMode `json:"mode"`
	Name          string        `json:"name"`
	Icon          string        `json:"icon"`
	BaseSpeedKmh  float64       `json:"base_speed_kmh"`
	TrafficFactor float64       `json:"traffic_factor"`
	RainFactor    float64       `json:"rain_factor"`
	Cost          CostModel     `json:"cost"`
	Reliability   float64       `json:"reliability"`
}

// TransportProfiles is the static mode table, defined once at process start
// and never mutated. Speeds reflect real average Bangkok door-to-door speeds,
// not free-flow speeds.
var TransportProfiles = map[TransportMode]TransportProfile{
	ModeCar: {
		Mode:          ModeCar,
		Name:          "Private car",
		Icon:          "🚗",
		BaseSpeedKmh:  20,
		TrafficFactor: 0.5,
		RainFactor:    0.7,
		Cost:          CostModel{Base: 8, PerKm: 3.5},
		Reliability:   0.85,
	},
	ModeMotorcycle: {
		Mode:          ModeMotorcycle,
		Name:          "Motorcycle",
		Icon:          "🏍️",
		BaseSpeedKmh:  25,
		TrafficFactor: 0.75,
		RainFactor:    0.5,
		Cost:          CostModel{Base: 5, PerKm: 1.5},
		Reliability:   0.75,
	},
	ModePublic: {
		Mode:          ModePublic,
		Name:          "Public bus",
		Icon:          "🚌",
		BaseSpeedKmh:  15,
		TrafficFactor: 0.8,
		RainFactor:    0.9,
		Cost:          CostModel{Base: 0, PerKm: 1.2},
		Reliability:   0.9,
	},
	ModeBTSMRT: {
		Mode:          ModeBTSMRT,
		Name:          "BTS/MRT",
		Icon:          "🚇",
		BaseSpeedKmh:  35,
		TrafficFactor: 1.0,
		RainFactor:    0.95,
		Cost:          CostModel{Base: 0, PerKm: 2.5},
		Reliability:   0.95,
	},
}

// ProfileFor looks up the static profile for a mode.
func ProfileFor(mode TransportMode) (TransportProfile, bool) {
	p, ok := TransportProfiles[mode]
	return p, ok
}
