package animate

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/inscribe/internal"
)

func triangleSampler(t *testing.T, start, end int) *Sampler {
	inner, err := internal.NewRegularPolygon(internal.Point{}, 3, 100, 0)
	require.NoError(t, err)
	return &Sampler{
		Inner:       inner,
		OuterSides:  4,
		OuterRadius: 150,
		Start:       start,
		End:         end,
	}
}

func TestSamplerFrames(t *testing.T) {
	sampler := triangleSampler(t, 0, 100)
	frames, err := sampler.Frames()
	require.NoError(t, err)
	require.Len(t, frames, 100)

	for i, frame := range frames {
		assert.Equal(t, i, frame.Index)
		assert.InDelta(t, float64(i)/100*2*math.Pi, frame.Angle, 1e-12)
		assert.Equal(t, frame.Angle, frame.Outer.Rotation())
		assert.Equal(t, frame.Angle, frame.Expanded.Rotation())
		assert.Equal(t, 4, frame.Expanded.Sides())
		// Anything enclosing the triangle is at least as big as it
		assert.GreaterOrEqual(t, frame.Ratio, 1.0)
		assert.InDelta(t, frame.Expanded.Area()/sampler.Inner.Area(), frame.Ratio, 1e-12)
		for _, vertex := range sampler.Inner.Vertices() {
			assert.True(t, frame.Expanded.Contains(vertex))
		}
	}

	// The square turns through a quarter turn symmetry, so frame 25 repeats frame 0
	assert.InDelta(t, frames[0].Ratio, frames[25].Ratio, 1e-6)
}

func TestSamplerInvalid(t *testing.T) {
	sampler := triangleSampler(t, 0, 1)
	sampler.OuterSides = 2
	_, err := sampler.Frame(0)
	assert.ErrorIs(t, err, internal.ErrInvalidGeometry)

	_, err = (&Sampler{OuterSides: 4, OuterRadius: 1, End: 1}).Frame(0)
	assert.ErrorIs(t, err, internal.ErrInvalidGeometry)
}

func TestDriverRunsAllFrames(t *testing.T) {
	driver := &Driver{}
	sampler := triangleSampler(t, 10, 20)

	var indexes []int
	err := driver.Animate(context.Background(), sampler, func(frame Frame) error {
		indexes = append(indexes, frame.Index)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, indexes)
}

func TestDriverSupersededSequenceStops(t *testing.T) {
	driver := &Driver{Delay: time.Millisecond}

	sampler := triangleSampler(t, 0, 100)
	first := driver.Begin()
	firstFrame := make(chan struct{})
	proceed := make(chan struct{})
	var frames int
	var runErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = driver.Run(context.Background(), first, sampler, func(Frame) error {
			frames++
			if frames == 1 {
				close(firstFrame)
				<-proceed
			}
			return nil
		})
	}()

	<-firstFrame
	second := driver.Begin()
	assert.False(t, driver.Live(first))
	assert.True(t, driver.Live(second))
	close(proceed)
	wg.Wait()

	assert.NoError(t, runErr, "a superseded sequence stops silently")
	assert.Equal(t, 1, frames)

	// The new sequence is unaffected
	var secondFrames int
	err := driver.Run(context.Background(), second, triangleSampler(t, 0, 3), func(Frame) error {
		secondFrames++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, secondFrames)
}

func TestDriverContextCancel(t *testing.T) {
	driver := &Driver{Delay: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())

	var frames int
	err := driver.Animate(ctx, triangleSampler(t, 0, 100), func(Frame) error {
		frames++
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, frames)
}

func TestDriverHaltsOnError(t *testing.T) {
	t.Run("callback error", func(t *testing.T) {
		boom := errors.New("boom")
		var frames int
		err := (&Driver{}).Animate(context.Background(), triangleSampler(t, 0, 10), func(Frame) error {
			frames++
			if frames == 3 {
				return boom
			}
			return nil
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 3, frames)
	})

	t.Run("convergence failure", func(t *testing.T) {
		sampler := triangleSampler(t, 0, 10)
		// Re-centering a square around a triangle takes a few iterations
		sampler.Expander = &internal.Expander{MaxIterations: 1}
		var frames int
		err := (&Driver{}).Animate(context.Background(), sampler, func(Frame) error {
			frames++
			return nil
		})
		assert.ErrorIs(t, err, internal.ErrConvergenceFailure)
		assert.Equal(t, 0, frames)
	})
}

func TestNewDriver(t *testing.T) {
	driver := NewDriver()
	assert.Equal(t, DefaultDelay, driver.Delay)
	assert.False(t, driver.Live(nil))
	assert.Equal(t, "Ø", (*Token)(nil).String())
}
