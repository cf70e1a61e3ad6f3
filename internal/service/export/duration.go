package export

import "fmt"

// FormatDuration renders a minute count as "8h 30m", dropping the
// minute part when it lands on the hour ("8h"). Hours floor, never
// round.
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}
