package utils

import (
	"fmt"
	"time"
)

// DefaultNewReleaseWindow is how long after its release date a shoe counts as new.
const DefaultNewReleaseWindow = 30 * 24 * time.Hour

// FormatPrice renders a price held in cents as a dollar amount, e.g. 10000 -> "$100.00".
// Values are not validated; negative prices format as-is.
func FormatPrice(cents int) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

// Pluralize joins count and noun, adding an "s" unless count is exactly one.
func Pluralize(noun string, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}

// IsNewShoe reports whether release falls inside window before now.
// Release dates in the future count as new.
func IsNewShoe(release, now time.Time, window time.Duration) bool {
	return now.Sub(release) < window
}

// NewnessClassifier binds IsNewShoe to a window and clock.
func NewnessClassifier(window time.Duration, now func() time.Time) func(time.Time) bool {
	if window <= 0 {
		window = DefaultNewReleaseWindow
	}
	if now == nil {
		now = time.Now
	}
	return func(release time.Time) bool {
		return IsNewShoe(release, now(), window)
	}
}
