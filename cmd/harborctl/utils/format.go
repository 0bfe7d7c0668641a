// Package utils provides utility functions for the harborctl CLI.
package utils

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatBytes converts raw artifact byte counts into human-readable sizes
// using IEC units, matching what the registry UI shows for image layers.
// Keeps table output compact instead of printing nine-digit byte counts.
func FormatBytes(size int64) string {
	if size < 0 {
		return "unknown"
	}
	return humanize.IBytes(uint64(size))
}

// FormatTime renders registry timestamps as relative durations ("3 days ago")
// for list output, where recency matters more than the exact instant. Zero
// timestamps render as "never" since the registry reports unset pull times
// that way.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.Time(t)
}

// FormatCount renders large pull/artifact counts with thousands separators
// so heavily-pulled repositories stay readable in tables.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// FormatDuration converts Go time.Duration values into human-readable string
// representations for CLI output display. Uses progressive time unit scaling
// to present durations in the most appropriate unit based on magnitude.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	} else if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	} else {
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

// FormatBool renders booleans as "yes"/"no" for table cells, which reads
// better in narrow columns than "true"/"false".
func FormatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
