package service

import "time"

// nowUTC returns the server-assigned timestamp stored in the TEXT columns.
// UTC, ISO 8601.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
