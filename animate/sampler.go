package animate

import (
	"math"

	"github.com/pkg/errors"

	"github.com/osuushi/inscribe/internal"
)

const DefaultSteps = 100

// One sampled orientation: the rotated outer template, its expansion around
// the inner polygon, and how much bigger than the inner polygon it came out.
type Frame struct {
	Index      int
	Angle      float64
	Inner      *internal.RegularPolygon
	Outer      *internal.RegularPolygon
	Expanded   *internal.RegularPolygon
	Iterations int
	// Expanded area over inner area
	Ratio float64
}

// Sampler walks the outer template through rotations (i / Steps) * 2π for i
// in [Start, End), expanding it around a fixed inner polygon each time. The
// template is centered on the inner polygon.
type Sampler struct {
	Inner       *internal.RegularPolygon
	OuterSides  int
	OuterRadius float64
	Start, End  int
	Steps       int
	// Defaults to internal.NewExpander() when nil
	Expander *internal.Expander
}

func (s *Sampler) steps() int {
	if s.Steps <= 0 {
		return DefaultSteps
	}
	return s.Steps
}

func (s *Sampler) Angle(i int) float64 {
	return float64(i) / float64(s.steps()) * 2 * math.Pi
}

func (s *Sampler) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

func (s *Sampler) Frame(i int) (Frame, error) {
	if s.Inner == nil {
		return Frame{}, errors.Wrap(internal.ErrInvalidGeometry, "sampler has no inner polygon")
	}
	angle := s.Angle(i)
	outer, err := internal.NewRegularPolygon(s.Inner.Center(), s.OuterSides, s.OuterRadius, angle)
	if err != nil {
		return Frame{}, errors.Wrap(err, "outer template")
	}

	expander := s.Expander
	if expander == nil {
		expander = internal.NewExpander()
	}
	expansion, err := expander.Run(outer, s.Inner)
	if err != nil {
		return Frame{}, errors.Wrapf(err, "frame %d at %.4f rad", i, angle)
	}

	return Frame{
		Index:      i,
		Angle:      angle,
		Inner:      s.Inner,
		Outer:      outer,
		Expanded:   expansion.Polygon,
		Iterations: expansion.Iterations,
		Ratio:      expansion.Polygon.Area() / s.Inner.Area(),
	}, nil
}

// Every frame back to back, with no pacing. Stops at the first failure.
func (s *Sampler) Frames() ([]Frame, error) {
	frames := make([]Frame, 0, s.Len())
	for i := s.Start; i < s.End; i++ {
		frame, err := s.Frame(i)
		if err != nil {
			return frames, err
		}
		frames = append(frames, frame)
	}
	return frames, nil
}
