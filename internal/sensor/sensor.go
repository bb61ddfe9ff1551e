// Package sensor drives the optional live counters (steps walked, steps to
// the next lamp, bulbs broken) from a pedometer or gyroscope feed. A missing
// sensor is a normal state: every counter then displays "N/A" instead of
// failing.
package sensor

import (
	"context"
	"math"
	"time"
)

// NotAvailable is shown in place of a value when the sensor is missing
const NotAvailable = "N/A"

// Reading is one sample from a sensor. Pedometer sources fill Steps with the
// steps counted since the subscription began; gyroscope sources fill X, Y, Z.
type Reading struct {
	Steps int
	X     float64
	Y     float64
	Z     float64
	At    time.Time
}

// Magnitude is the length of the rotation vector
func (r Reading) Magnitude() float64 {
	return math.Sqrt(r.X*r.X + r.Y*r.Y + r.Z*r.Z)
}

// Source is a sensor feed. Subscribe's channel is closed when ctx is done or
// the feed ends.
type Source interface {
	Available(ctx context.Context) bool
	Subscribe(ctx context.Context) (<-chan Reading, error)
}

// Baseliner is implemented by pedometer sources that know today's steps so far
type Baseliner interface {
	StepsSince(ctx context.Context, since time.Time) (int, error)
}

// Unavailable is the source of a platform without the sensor
type Unavailable struct{}

func (Unavailable) Available(context.Context) bool { return false }

func (Unavailable) Subscribe(context.Context) (<-chan Reading, error) {
	return nil, ErrUnavailable
}

// ChannelSource replays readings pushed by the caller, for tests and for
// feeding recorded data
type ChannelSource struct {
	readings chan Reading
	baseline int
}

// NewChannelSource creates a source with a buffer of the given size and a
// fixed step baseline
func NewChannelSource(buffer, baseline int) *ChannelSource {
	return &ChannelSource{readings: make(chan Reading, buffer), baseline: baseline}
}

// Push queues a reading; it blocks when the buffer is full
func (c *ChannelSource) Push(r Reading) {
	c.readings <- r
}

// End closes the feed
func (c *ChannelSource) End() {
	close(c.readings)
}

func (c *ChannelSource) Available(context.Context) bool { return true }

func (c *ChannelSource) StepsSince(context.Context, time.Time) (int, error) {
	return c.baseline, nil
}

func (c *ChannelSource) Subscribe(ctx context.Context) (<-chan Reading, error) {
	out := make(chan Reading)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-c.readings:
				if !ok {
					return
				}
				select {
				case out <- r:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// Display is what a counter card shows
type Display struct {
	Value string
	Unit  string
}

// StartOfDay returns local midnight of t
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
