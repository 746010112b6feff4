package domain

import "time"

// TravelEstimate is the output of one estimator pass for a single
// (origin, destination, mode, weather) tuple. Immutable once produced.
type TravelEstimate struct {
	TimeMinutes  int              `json:"time_minutes"`
	DistanceKm   float64          `json:"distance_km"`
	CostTHB      int              `json:"cost_thb"`
	TrafficZones []TrafficZoneHit `json:"traffic_zones"`
	Reliability  float64          `json:"reliability"`
}

// RiskLevel classifies the overall trip risk.
type RiskLevel string

const (
	RiskSafe       RiskLevel = "safe"
	RiskModerate   RiskLevel = "moderate"
	RiskCaution    RiskLevel = "caution"
	RiskHighDanger RiskLevel = "high_danger"
)

// Advice returns the fixed advisory string for a level.
func (l RiskLevel) Advice() string {
	switch l {
	case RiskHighDanger:
		return "Leave earlier than planned or consider a different route"
	case RiskCaution:
		return "Prepare ahead and keep an eye on conditions"
	case RiskModerate:
		return "Plan your trip as usual"
	default:
		return "Good conditions for travel"
	}
}

// RiskAssessment is the additive risk score plus the human-readable factors
// that contributed to it.
type RiskAssessment struct {
	Level   RiskLevel `json:"level"`
	Score   int       `json:"score"`
	Factors []string  `json:"factors"`
	Advice  string    `json:"advice"`
}

// PlanInput carries everything the departure planner needs. All state is
// passed in explicitly; the planner reads nothing ambient.
type PlanInput struct {
	Destination       string           `json:"destination"`
	DestinationCoords *Coordinate      `json:"destination_coords"`
	CurrentLocation   *Coordinate      `json:"current_location"`
	ArrivalTime       string           `json:"arrival_time"` // "HH:MM" local time-of-day
	Mode              TransportMode    `json:"mode"`
	Weather           *WeatherSnapshot `json:"weather,omitempty"`
}

// DeparturePlan is the final trip recommendation. Created on demand, never
// mutated after creation.
type DeparturePlan struct {
	ID                string           `json:"id,omitempty"`
	Destination       string           `json:"destination"`
	DestinationCoords Coordinate       `json:"destination_coords"`
	ArrivalTime       string           `json:"arrival_time"`   // requested "HH:MM"
	DepartureTime     string           `json:"departure_time"` // recommended "HH:MM"
	ArrivalAt         time.Time        `json:"arrival_at"`
	DepartAt          time.Time        `json:"depart_at"`
	TravelTimeMinutes int              `json:"travel_time_minutes"`
	BufferMinutes     int              `json:"buffer_minutes"`
	TotalMinutes      int              `json:"total_minutes"`
	DistanceKm        float64          `json:"distance_km"`
	CostTHB           int              `json:"cost_thb"`
	Weather           *WeatherSnapshot `json:"weather,omitempty"`
	TrafficZones      []TrafficZoneHit `json:"traffic_zones"`
	Risk              RiskAssessment   `json:"risk"`
	Transport         TransportProfile `json:"transport"`
	Reliability       float64          `json:"reliability"`
	ComputedAt        time.Time        `json:"computed_at"`
}
