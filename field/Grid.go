package field

import (
	"errors"
	"fmt"

	"github.com/kpfaulkner/efield-go/util"
)

// GridSpec is a rectangular lattice of observation points. Min and Max are
// the corner samples, inclusive.
type GridSpec struct {
	Min    util.Vector2
	Max    util.Vector2
	Width  int32
	Height int32
}

func (g GridSpec) validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %d x %d", g.Width, g.Height)
	}
	if (g.Width > 1 && g.Max.X <= g.Min.X) || (g.Height > 1 && g.Max.Y <= g.Min.Y) {
		return errors.New("grid extent is empty or inverted")
	}
	return nil
}

// PointAt returns the observation point for row y, column x.
func (g GridSpec) PointAt(y int32, x int32) util.Vector2 {
	px := g.Min.X
	if g.Width > 1 {
		px = util.Lerp(g.Min.X, g.Max.X, float64(x)/float64(g.Width-1))
	}
	py := g.Min.Y
	if g.Height > 1 {
		py = util.Lerp(g.Min.Y, g.Max.Y, float64(y)/float64(g.Height-1))
	}
	return util.NewVector2(px, py)
}

// SampleGrid fills a matrix with field magnitudes, row y / column x matching
// GridSpec.PointAt.
func (e *Evaluator) SampleGrid(world World, spec GridSpec) (*util.Matrix[float64], error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	m := util.New2DMatrix[float64](spec.Height, spec.Width)
	for y := int32(0); y < spec.Height; y++ {
		for x := int32(0); x < spec.Width; x++ {
			m.Set(y, x, e.Magnitude(spec.PointAt(y, x), world))
		}
	}
	return m, nil
}
