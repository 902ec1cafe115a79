package status

import (
	"fmt"
	"time"
)

// StartTime anchors uptime to the moment the process came up.
// It is captured once in main and never changes afterwards.
type StartTime struct {
	at time.Time
}

func NewStartTime(at time.Time) *StartTime {
	return &StartTime{at: at}
}

// At returns the recorded start instant.
func (s *StartTime) At() time.Time {
	return s.at
}

// Elapsed returns the time between start and now, never negative.
func (s *StartTime) Elapsed(now time.Time) time.Duration {
	d := now.Sub(s.at)
	if d < 0 {
		return 0
	}
	return d
}

// Uptime returns the formatted uptime at now - `1日 2時間 3分 4秒`
func (s *StartTime) Uptime(now time.Time) string {
	return FormatUptime(s.Elapsed(now))
}

// FormatUptime formats d as days, hours, minutes and seconds with Japanese unit suffixes.
// Fractional seconds are truncated.
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)

	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	return fmt.Sprintf("%d日 %d時間 %d分 %d秒", days, hours, minutes, seconds)
}
