package gamelog

import (
	"strconv"
	"strings"
)

// ParseTOI converts an "MM:SS" clock into fractional minutes. Anything that
// is not two non-negative integer components yields 0.
func ParseTOI(clock string) float64 {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return 0
	}

	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || minutes < 0 {
		return 0
	}
	seconds, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || seconds < 0 {
		return 0
	}

	return float64(minutes) + float64(seconds)/60.0
}
