package records

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	pmPattern   = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*PM`)
	amPattern   = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*AM`)
	barePattern = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
)

// ExtractTimestamp derives a best-effort HH:MM:SS time-of-day from free text.
// Pattern precedence is fixed: a PM-marked time wins over an AM-marked one,
// which wins over a bare H:MM. A bare time is taken verbatim as 24-hour
// notation, so "3:15" means 03:15, not 15:15; ambiguous, but deterministic.
// When no time expression is found at all, the current wall-clock time-of-day
// is used. Total function, never fails.
func ExtractTimestamp(text string) string {
	return extractTimestampAt(text, time.Now())
}

func extractTimestampAt(text string, now time.Time) string {
	if m := pmPattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour != 12 {
			hour = (hour + 12) % 24
		}
		return fmt.Sprintf("%02d:%s:00", hour, m[2])
	}

	if m := amPattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour == 12 {
			hour = 0
		}
		return fmt.Sprintf("%02d:%s:00", hour, m[2])
	}

	if m := barePattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%02d:%s:00", hour, m[2])
	}

	return now.Format("15:04") + ":00"
}
