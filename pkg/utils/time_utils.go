package utils

import "time"

// FormatTime renders timestamps the way the frontend expects them,
// matching ISO 8601 output.
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
