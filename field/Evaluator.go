package field

import (
	"github.com/kpfaulkner/efield-go/options"
	"github.com/kpfaulkner/efield-go/util"
	log "github.com/sirupsen/logrus"
)

type EvaluatorOption func(e *Evaluator) error

func WithOptions(opts *options.FieldOptions) EvaluatorOption {
	return func(e *Evaluator) error {
		e.opts = options.NewFieldOptions(opts)
		return nil
	}
}

func WithConvention(c options.Convention) EvaluatorOption {
	return func(e *Evaluator) error {
		e.opts.Convention = c
		return nil
	}
}

// Evaluator sums point charge contributions using Coulomb's law.
type Evaluator struct {
	opts *options.FieldOptions
}

var defaultEvaluator = NewEvaluator()

func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{opts: options.NewFieldOptions(nil)}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			panic("Error applying option to Evaluator: " + err.Error())
		}
	}
	return e
}

func (e *Evaluator) Options() options.FieldOptions {
	return *e.opts
}

// FieldAt returns the net field at point due to every charge in world.
// A point sitting exactly on a charge gives NaN/Inf components.
func (e *Evaluator) FieldAt(point util.Vector2, world World) util.Vector2 {
	field := util.Vector2{}
	physical := e.opts.Convention == options.PhysicalConvention

	for _, pc := range world {
		direction := util.IfThenElse(physical, point.Sub(pc.Position), pc.Position.Sub(point))
		distance := direction.Length()
		distanceSquared := distance * distance
		unitDirection := direction.Div(distance)

		// same operation order as the printed examples: ((u * K) * q) / r²
		contribution := unitDirection.Scale(K).Scale(pc.Charge).Div(distanceSquared)
		if e.opts.Debug {
			log.Debugf("charge %v at %v contributes %v at %v", pc.Charge, pc.Position, contribution, point)
		}
		field = field.Add(contribution)
	}

	return field
}

func (e *Evaluator) Magnitude(point util.Vector2, world World) float64 {
	return e.FieldAt(point, world).Length()
}

// FieldAt evaluates with the default evaluator, see Evaluator.FieldAt.
func FieldAt(point util.Vector2, world World) util.Vector2 {
	return defaultEvaluator.FieldAt(point, world)
}
