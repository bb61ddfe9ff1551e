package sensor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rgehrsitz/countdown/internal/copytext"
	"github.com/rgehrsitz/countdown/internal/logging"
)

// ErrUnavailable is returned by sources without a sensor
var ErrUnavailable = errors.New("sensor not available")

// Counter is a live counter card
type Counter interface {
	Run(ctx context.Context) error
	Available() bool
	Display() Display
}

// LampSpacing is the number of steps between two street lamps
const LampSpacing = 100

// BulbDropThreshold is the rotation magnitude that counts as a dropped bulb
const BulbDropThreshold = 10.0

// feed holds what every counter shares: the source, the availability flag
// and the lock over the counter state
type feed struct {
	source Source
	logger logging.Logger
	now    func() time.Time

	mu        sync.Mutex
	available bool
}

func (f *feed) init(src Source) {
	if src == nil {
		src = Unavailable{}
	}
	f.source = src
	f.logger = logging.NopLogger{}
	f.now = time.Now
}

// run marks the counter available, hands today's baseline to onBase and every
// reading to onReading until ctx is done. Sensor failures only flip the
// counter to unavailable.
func (f *feed) run(ctx context.Context, name string, onBase func(int), onReading func(Reading)) error {
	if !f.source.Available(ctx) {
		f.setAvailable(false)
		return nil
	}

	if b, ok := f.source.(Baseliner); ok && onBase != nil {
		base, err := b.StepsSince(ctx, StartOfDay(f.now()))
		if err != nil {
			f.logger.Warnf("%s: failed to read today's steps: %v", name, err)
			f.setAvailable(false)
			return nil
		}
		f.mu.Lock()
		onBase(base)
		f.mu.Unlock()
	}

	readings, err := f.source.Subscribe(ctx)
	if err != nil {
		f.logger.Warnf("%s: failed to subscribe: %v", name, err)
		f.setAvailable(false)
		return nil
	}
	f.setAvailable(true)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case r, ok := <-readings:
			if !ok {
				return nil
			}
			f.mu.Lock()
			onReading(r)
			f.mu.Unlock()
		}
	}
}

func (f *feed) setAvailable(v bool) {
	f.mu.Lock()
	f.available = v
	f.mu.Unlock()
}

// Available reports whether the counter has a live sensor
func (f *feed) Available() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.available
}

// StepCounter shows today's steps: the baseline since midnight plus live steps
type StepCounter struct {
	feed
	base int
	live int
}

// NewStepCounter creates a step counter over a pedometer source
func NewStepCounter(src Source) *StepCounter {
	c := &StepCounter{}
	c.init(src)
	return c
}

// SetLogger sets the logger; nil restores the no-op logger
func (c *StepCounter) SetLogger(l logging.Logger) { c.logger = logging.OrNop(l) }

// Run consumes the source until ctx is done or the feed ends
func (c *StepCounter) Run(ctx context.Context) error {
	return c.run(ctx, "step counter",
		func(base int) { c.base, c.live = base, 0 },
		func(r Reading) { c.live = r.Steps })
}

// Steps returns today's total
func (c *StepCounter) Steps() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.base + c.live
}

func (c *StepCounter) Display() Display {
	if !c.Available() {
		return Display{Value: NotAvailable, Unit: "steps not available"}
	}
	return Display{Value: copytext.FormatCount(c.Steps()), Unit: "steps today"}
}

// LampStepsCounter shows the steps left to the next lamp, one every LampSpacing steps
type LampStepsCounter struct {
	feed
	base int
	live int
}

// NewLampStepsCounter creates a lamp counter over a pedometer source
func NewLampStepsCounter(src Source) *LampStepsCounter {
	c := &LampStepsCounter{}
	c.init(src)
	return c
}

// SetLogger sets the logger; nil restores the no-op logger
func (c *LampStepsCounter) SetLogger(l logging.Logger) { c.logger = logging.OrNop(l) }

// Run consumes the source until ctx is done or the feed ends
func (c *LampStepsCounter) Run(ctx context.Context) error {
	return c.run(ctx, "lamp counter",
		func(base int) { c.base, c.live = base, 0 },
		func(r Reading) { c.live = r.Steps })
}

// StepsToLamp is LampSpacing minus the steps past the last lamp; standing
// right at a lamp counts as a full LampSpacing to the next
func (c *LampStepsCounter) StepsToLamp() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return StepsToNextLamp(c.base + c.live)
}

// StepsToNextLamp computes the lamp distance for a step total
func StepsToNextLamp(total int) int {
	remainder := total % LampSpacing
	if remainder == 0 {
		return LampSpacing
	}
	return LampSpacing - remainder
}

func (c *LampStepsCounter) Display() Display {
	if !c.Available() {
		return Display{Value: NotAvailable, Unit: "pedometer not available"}
	}
	return Display{Value: copytext.FormatCount(c.StepsToLamp()), Unit: "steps to lamp"}
}

// BulbCounter counts a broken bulb for every gyroscope sample whose
// magnitude exceeds BulbDropThreshold
type BulbCounter struct {
	feed
	broken int
}

// NewBulbCounter creates a bulb counter over a gyroscope source
func NewBulbCounter(src Source) *BulbCounter {
	c := &BulbCounter{}
	c.init(src)
	return c
}

// SetLogger sets the logger; nil restores the no-op logger
func (c *BulbCounter) SetLogger(l logging.Logger) { c.logger = logging.OrNop(l) }

// Run consumes the source until ctx is done or the feed ends
func (c *BulbCounter) Run(ctx context.Context) error {
	return c.run(ctx, "bulb counter", nil, func(r Reading) {
		if r.Magnitude() > BulbDropThreshold {
			c.broken++
		}
	})
}

// Broken returns the bulbs broken so far
func (c *BulbCounter) Broken() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.broken
}

func (c *BulbCounter) Display() Display {
	if !c.Available() {
		return Display{Value: NotAvailable, Unit: "gyroscope not available"}
	}
	return Display{Value: copytext.FormatCount(c.Broken()), Unit: "bulbs broken"}
}
