package status

import (
	"math/rand/v2"
	"sync"
	"time"
)

const (
	StatusOnline = "Online"

	// LastUpdatedLayout is the wall clock layout of Snapshot.LastUpdated
	LastUpdatedLayout = "2006-01-02 15:04:05"
)

// Placeholder metric ranges, both ends inclusive.
var (
	PingRange    = Range{Min: 50, Max: 250}
	ServersRange = Range{Min: 1000, Max: 5000}
	UsersRange   = Range{Min: 5000, Max: 15000}
)

type Range struct {
	Min int
	Max int
}

func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Snapshot is the payload served by /api/status.
// ping, servers and users are placeholders and do not reflect any live system.
type Snapshot struct {
	Ping        int    `json:"ping"`
	Servers     int    `json:"servers"`
	Users       int    `json:"users"`
	Uptime      string `json:"uptime"`
	Status      string `json:"status"`
	LastUpdated string `json:"last_updated"`
}

type Option func(*Generator)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithRand replaces the random source used for the placeholder metrics
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rnd = r
	}
}

// Generator builds a fresh Snapshot per call. Safe for concurrent use.
type Generator struct {
	start *StartTime
	now   func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewGenerator(start *StartTime, opts ...Option) *Generator {
	g := &Generator{
		start: start,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Snapshot() *Snapshot {
	now := g.now()

	return &Snapshot{
		Ping:        g.intn(PingRange),
		Servers:     g.intn(ServersRange),
		Users:       g.intn(UsersRange),
		Uptime:      g.start.Uptime(now),
		Status:      StatusOnline,
		LastUpdated: now.Local().Format(LastUpdatedLayout),
	}
}

func (g *Generator) intn(r Range) int {
	n := r.Max - r.Min + 1
	if g.rnd == nil {
		return r.Min + rand.IntN(n)
	}

	// *rand.Rand is not safe for concurrent use
	g.mu.Lock()
	defer g.mu.Unlock()
	return r.Min + g.rnd.IntN(n)
}
