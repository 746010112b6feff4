package domain

// Severity classifies how bad a congestion zone is after rush-hour
// amplification.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityVeryHigh Severity = "very_high"
)

// Weight returns the numeric weight used by risk scoring and buffer
// calculation: low=1 .. very_high=4.
func (s Severity) Weight() int {
	switch s {
	case SeverityVeryHigh:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	default:
		return 1
	}
}

// ZoneBounds is an inclusive latitude/longitude rectangle.
type ZoneBounds struct {
	LatMin, LatMax float64
	LngMin, LngMax float64
}

// Contains reports whether the point falls inside the rectangle, bounds
// inclusive.
func (b ZoneBounds) Contains(c Coordinate) bool {
	return c.Lat >= b.LatMin && c.Lat <= b.LatMax &&
		c.Lng >= b.LngMin && c.Lng <= b.LngMax
}

// TrafficZone is a named congestion hot-spot. The multiplier is the
// time-of-day-independent baseline (always >= 1); the effective multiplier is
// computed per query with rush-hour amplification applied, never stored.
type TrafficZone struct {
	Name       string
	Multiplier float64
	Bounds     ZoneBounds
}

// BangkokTrafficZones is the static zone table. Order matters: zone hits are
// reported in declaration order.
var BangkokTrafficZones = []TrafficZone{
	{Name: "Silom-Sathon business district", Multiplier: 2.0, Bounds: ZoneBounds{13.72, 13.73, 100.52, 100.54}},
	{Name: "Siam-Ratchaprasong shopping district", Multiplier: 1.8, Bounds: ZoneBounds{13.74, 13.75, 100.53, 100.55}},
	{Name: "Pratunam-Ratchathewi commercial area", Multiplier: 1.6, Bounds: ZoneBounds{13.75, 13.76, 100.53, 100.54}},
	{Name: "Sukhumvit Road", Multiplier: 1.7, Bounds: ZoneBounds{13.72, 13.78, 100.55, 100.65}},
	{Name: "Phahon Yothin Road", Multiplier: 1.5, Bounds: ZoneBounds{13.76, 13.85, 100.52, 100.56}},
}

// TrafficZoneHit is a zone matched for one route query, carrying the
// effective (possibly rush-hour-amplified) multiplier. Ephemeral, never
// persisted.
type TrafficZoneHit struct {
	Name       string   `json:"name"`
	Multiplier float64  `json:"multiplier"`
	Severity   Severity `json:"severity"`
}
