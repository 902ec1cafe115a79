package status

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_SnapshotRanges(t *testing.T) {
	gen := NewGenerator(NewStartTime(time.Now()))

	for range 1000 {
		s := gen.Snapshot()
		assert.True(t, PingRange.Contains(s.Ping), "ping out of range: %d", s.Ping)
		assert.True(t, ServersRange.Contains(s.Servers), "servers out of range: %d", s.Servers)
		assert.True(t, UsersRange.Contains(s.Users), "users out of range: %d", s.Users)
		assert.Equal(t, StatusOnline, s.Status)
		assert.Regexp(t, uptimePattern, s.Uptime)
	}
}

func TestGenerator_HitsRangeBounds(t *testing.T) {
	gen := NewGenerator(NewStartTime(time.Now()), WithRand(rand.New(rand.NewPCG(1, 2))))

	seenMin, seenMax := false, false
	for range 20000 {
		s := gen.Snapshot()
		if s.Ping == PingRange.Min {
			seenMin = true
		}
		if s.Ping == PingRange.Max {
			seenMax = true
		}
	}
	assert.True(t, seenMin, "ping never reached lower bound")
	assert.True(t, seenMax, "ping never reached upper bound")
}

func TestGenerator_UsesClock(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)
	now := start.Add(26*time.Hour + 3*time.Minute + 4*time.Second)

	gen := NewGenerator(NewStartTime(start), WithClock(func() time.Time { return now }))
	s := gen.Snapshot()

	assert.Equal(t, "1日 2時間 3分 4秒", s.Uptime)
	assert.Equal(t, "2024-05-02 12:03:04", s.LastUpdated)
}

func TestGenerator_UptimeNonDecreasing(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start

	gen := NewGenerator(NewStartTime(start), WithClock(func() time.Time {
		now = now.Add(1500 * time.Millisecond)
		return now
	}))

	var prev time.Duration
	for range 100 {
		s := gen.Snapshot()
		d := parseUptime(t, s.Uptime)
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
}

func TestGenerator_Concurrent(t *testing.T) {
	gen := NewGenerator(NewStartTime(time.Now()), WithRand(rand.New(rand.NewPCG(7, 7))))

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				s := gen.Snapshot()
				assert.True(t, UsersRange.Contains(s.Users))
			}
		}()
	}
	wg.Wait()
}

func TestSnapshot_JSONFields(t *testing.T) {
	s := &Snapshot{Ping: 1, Servers: 2, Users: 3, Uptime: "0日 0時間 0分 0秒", Status: StatusOnline, LastUpdated: "2024-01-01 00:00:00"}
	data, err := json.Marshal(s)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{"ping", "servers", "users", "uptime", "status", "last_updated"} {
		assert.Contains(t, m, key)
	}
	assert.Len(t, m, 6)
}

func parseUptime(t *testing.T, s string) time.Duration {
	t.Helper()
	var d, h, m, sec int64
	_, err := fmt.Sscanf(s, "%d日 %d時間 %d分 %d秒", &d, &h, &m, &sec)
	require.NoError(t, err)
	return time.Duration(d)*24*time.Hour + time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second
}
