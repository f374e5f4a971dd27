package scenario

import (
	"github.com/kpfaulkner/efield-go/field"
	"github.com/kpfaulkner/efield-go/util"
)

// Scenario is a set of fixed charges and the points to evaluate the field at.
type Scenario struct {
	Title  string
	World  field.World
	Points []util.Vector2
}

// Result is the net field at a single observation point.
type Result struct {
	Point util.Vector2
	Field util.Vector2
}

// Evaluate runs every point of s through e, in order.
func (s Scenario) Evaluate(e *field.Evaluator) []Result {
	results := make([]Result, 0, len(s.Points))
	for _, p := range s.Points {
		results = append(results, Result{Point: p, Field: e.FieldAt(p, s.World)})
	}
	return results
}

// Example195 is two point charges, +20μC and -10μC, observed off axis.
func Example195() Scenario {
	return Scenario{
		Title: "Example 19.5: Electric field of two point charges",
		World: field.World{
			field.NewPointCharge(-1.0, 0.0, 20.0*field.Micro),
			field.NewPointCharge(1.0, 0.0, -10.0*field.Micro),
		},
		Points: []util.Vector2{
			util.NewVector2(2.0, 2.0),
		},
	}
}

// Example196 is a dipole of separation d, observed outside the pair, at the
// midpoint, and on the perpendicular bisector at height y.
func Example196() Scenario {
	d := 3.0
	q := 10.0 * field.Micro
	y := 3.0

	return Scenario{
		Title: "Example 19.6: Dipole electric field",
		World: field.World{
			field.NewPointCharge(0.0, 0.0, q),
			field.NewPointCharge(d, 0.0, -q),
		},
		Points: []util.Vector2{
			util.NewVector2(-d/2.0, 0.0),
			util.NewVector2(d/2.0, 0.0),
			util.NewVector2(d/2.0, y),
		},
	}
}

// Builtin returns the worked examples in the order they are printed.
func Builtin() []Scenario {
	return []Scenario{
		Example195(),
		Example196(),
	}
}
