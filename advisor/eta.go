package advisor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go-healthnav/types"
)

const (
	earthRadiusMiles = 3958.8

	// Assumed transport speeds in mph.
	criticalSpeed = 40
	stableSpeed   = 30
)

// HaversineMiles calculates the great-circle distance between two
// points on the earth (specified in decimal degrees).
func HaversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	radLat1 := lat1 * math.Pi / 180
	radLng1 := lng1 * math.Pi / 180
	radLat2 := lat2 * math.Pi / 180
	radLng2 := lng2 * math.Pi / 180

	deltaLat := radLat2 - radLat1
	deltaLng := radLng2 - radLng1

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(radLat1)*math.Cos(radLat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

func etaMinutes(distanceMiles float64, severity types.Severity) int {
	speed := stableSpeed
	if severity == types.Critical {
		speed = criticalSpeed
	}
	return int(distanceMiles / float64(speed) * 60)
}

// FormatETA renders a distance as the free-text ETA the cards show.
func FormatETA(distanceMiles float64, severity types.Severity) string {
	if distanceMiles <= 0 {
		return "Unknown"
	}
	minutes := etaMinutes(distanceMiles, severity)
	switch {
	case minutes < 1:
		return "<1 min"
	case minutes < 60:
		return fmt.Sprintf("%d min", minutes)
	default:
		hours := minutes / 60
		mins := minutes % 60
		if mins > 0 {
			return fmt.Sprintf("%dh %dm", hours, mins)
		}
		return fmt.Sprintf("%dh", hours)
	}
}

// parseETAMinutes pulls the leading minute count out of a stored ETA
// string for sorting. Unparseable ETAs sort last.
func parseETAMinutes(eta string) int {
	fields := strings.Fields(eta)
	if len(fields) > 0 {
		if n, err := strconv.Atoi(strings.TrimPrefix(fields[0], "<")); err == nil {
			return n
		}
	}
	return math.MaxInt32
}
