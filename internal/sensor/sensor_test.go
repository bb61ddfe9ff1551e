package sensor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replay queues readings, closes the feed and returns the source
func replay(baseline int, readings ...Reading) *ChannelSource {
	src := NewChannelSource(len(readings), baseline)
	for _, r := range readings {
		src.Push(r)
	}
	src.End()
	return src
}

type brokenPedometer struct{ ChannelSource }

func (brokenPedometer) StepsSince(context.Context, time.Time) (int, error) {
	return 0, errors.New("permission denied")
}

func TestCounters_NotAvailable(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		counter Counter
		unit    string
	}{
		{"steps", NewStepCounter(Unavailable{}), "steps not available"},
		{"lamp", NewLampStepsCounter(nil), "pedometer not available"},
		{"bulbs", NewBulbCounter(Unavailable{}), "gyroscope not available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Display{Value: NotAvailable, Unit: tt.unit}, tt.counter.Display(), "before Run")
			require.NoError(t, tt.counter.Run(ctx), "a missing sensor is not an error")
			assert.False(t, tt.counter.Available())
			assert.Equal(t, Display{Value: NotAvailable, Unit: tt.unit}, tt.counter.Display())
		})
	}
}

func TestStepCounter(t *testing.T) {
	c := NewStepCounter(replay(4200, Reading{Steps: 10}, Reading{Steps: 25}, Reading{Steps: 830}))

	require.NoError(t, c.Run(context.Background()))

	assert.True(t, c.Available())
	assert.Equal(t, 5030, c.Steps(), "baseline plus the latest live count")
	assert.Equal(t, Display{Value: "5,030", Unit: "steps today"}, c.Display())
}

func TestStepCounter_BaselineFailure(t *testing.T) {
	c := NewStepCounter(&brokenPedometer{})

	require.NoError(t, c.Run(context.Background()))

	assert.False(t, c.Available())
	assert.Equal(t, NotAvailable, c.Display().Value)
}

func TestStepsToNextLamp(t *testing.T) {
	tests := []struct {
		total    int
		expected int
	}{
		{0, 100},
		{1, 99},
		{99, 1},
		{100, 100},
		{250, 50},
		{4230, 70},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, StepsToNextLamp(tt.total), "total %d", tt.total)
	}
}

func TestLampStepsCounter(t *testing.T) {
	c := NewLampStepsCounter(replay(4200, Reading{Steps: 30}))

	require.NoError(t, c.Run(context.Background()))

	assert.Equal(t, 70, c.StepsToLamp())
	assert.Equal(t, Display{Value: "70", Unit: "steps to lamp"}, c.Display())
}

func TestLampStepsCounter_AtALamp(t *testing.T) {
	c := NewLampStepsCounter(replay(300))

	require.NoError(t, c.Run(context.Background()))

	assert.Equal(t, 100, c.StepsToLamp())
}

func TestBulbCounter(t *testing.T) {
	c := NewBulbCounter(replay(0,
		Reading{X: 1, Y: 1, Z: 1},
		Reading{X: 10, Y: 0, Z: 0},    // exactly the threshold does not count
		Reading{X: 8, Y: 8, Z: 0},     // ~11.3
		Reading{X: -20, Y: 0.5, Z: 3}, // sign does not matter
	))

	require.NoError(t, c.Run(context.Background()))

	assert.Equal(t, 2, c.Broken())
	assert.Equal(t, Display{Value: "2", Unit: "bulbs broken"}, c.Display())
}

func TestCounter_StopsOnCancel(t *testing.T) {
	src := NewChannelSource(1, 0)
	c := NewStepCounter(src)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	src.Push(Reading{Steps: 12})
	assert.Eventually(t, func() bool { return c.Steps() == 12 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestReading_Magnitude(t *testing.T) {
	assert.InDelta(t, 5.0, Reading{X: 3, Y: 4}.Magnitude(), 1e-12)
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("test", 3600)
	got := StartOfDay(time.Date(2026, 3, 14, 17, 45, 12, 99, loc))
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, loc), got)
}
