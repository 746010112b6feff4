package planner

import (
	"time"

	"github.com/phee464/Lnw-web-hamhub/internal/domain"
	"github.com/phee464/Lnw-web-hamhub/pkg/geo"
)

// rushHourMultiplier amplifies zone congestion during the morning and
// evening peaks.
const rushHourMultiplier = 1.5

// isRushHour reports whether the local hour falls in 07-09 or 17-19,
// both windows inclusive.
func isRushHour(hour int) bool {
	return (hour >= 7 && hour <= 9) || (hour >= 17 && hour <= 19)
}

// AffectedZones returns every static zone whose rectangle contains the trip's
// origin or destination point, in the zone table's declaration order.
//
// This is an endpoint containment test only: a trip whose midpoint passes
// through a zone without either endpoint being inside it is not detected.
// Known undercount for long cross-zone trips; kept pending product
// clarification since changing it shifts risk scores.
func AffectedZones(origin, destination geo.Coordinate, now time.Time) []domain.TrafficZoneHit {
	hits := make([]domain.TrafficZoneHit, 0, len(domain.BangkokTrafficZones))
	rush := isRushHour(now.Hour())

	for _, zone := range domain.BangkokTrafficZones {
		if !zone.Bounds.Contains(origin) && !zone.Bounds.Contains(destination) {
			continue
		}

		multiplier := zone.Multiplier
		if rush {
			multiplier *= rushHourMultiplier
		}

		hits = append(hits, domain.TrafficZoneHit{
			Name:       zone.Name,
			Multiplier: multiplier,
			Severity:   severityFor(multiplier),
		})
	}

	return hits
}

// severityFor classifies an effective multiplier.
func severityFor(multiplier float64) domain.Severity {
	switch {
	case multiplier >= 2.5:
		return domain.SeverityVeryHigh
	case multiplier >= 1.8:
		return domain.SeverityHigh
	case multiplier >= 1.4:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}
