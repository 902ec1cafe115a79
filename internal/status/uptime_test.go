package status

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var uptimePattern = regexp.MustCompile(`^\d+日 \d+時間 \d+分 \d+秒$`)

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "0日 0時間 0分 0秒"},
		{"sub second", 999 * time.Millisecond, "0日 0時間 0分 0秒"},
		{"seconds", 59 * time.Second, "0日 0時間 0分 59秒"},
		{"minute boundary", 60 * time.Second, "0日 0時間 1分 0秒"},
		{"hour boundary", time.Hour, "0日 1時間 0分 0秒"},
		{"one of each", 90061 * time.Second, "1日 1時間 1分 1秒"},
		{"just before a day", 86399 * time.Second, "0日 23時間 59分 59秒"},
		{"many days", 400*24*time.Hour + 5*time.Minute, "400日 0時間 5分 0秒"},
		{"negative clamps", -5 * time.Second, "0日 0時間 0分 0秒"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatUptime(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, uptimePattern, got)
		})
	}
}

func TestStartTime_Elapsed(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	st := NewStartTime(start)

	assert.Equal(t, start, st.At())
	assert.Equal(t, 2*time.Hour, st.Elapsed(start.Add(2*time.Hour)))
	assert.Equal(t, time.Duration(0), st.Elapsed(start.Add(-time.Minute)))
	assert.Equal(t, "0日 2時間 0分 0秒", st.Uptime(start.Add(2*time.Hour)))
}
