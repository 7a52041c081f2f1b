// Package timefmt renders playback positions the way the HUD shows them.
package timefmt

import (
	"fmt"
	"math"
)

// Format renders seconds as H:MM:SS from one hour on and as M:SS below it.
// Fractions are truncated, negative and NaN inputs render as 0:00.
func Format(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	if math.IsInf(seconds, 1) {
		seconds = math.MaxInt32
	}

	total := int64(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
