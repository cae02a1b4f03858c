package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration compactly for debug log suffixes,
// choosing the largest unit that keeps the value readable (e.g. "850µs",
// "12ms", "1.5s", "2m3s").
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return d.Truncate(time.Second).String()
	}
}
