package scenario

import (
	"fmt"
	"io"

	"github.com/kpfaulkner/efield-go/field"
	"github.com/kpfaulkner/efield-go/units"
	log "github.com/sirupsen/logrus"
)

// Runner prints scenarios in SI prefixed units.
type Runner struct {
	out       io.Writer
	evaluator *field.Evaluator
}

// NewRunner writes to out. A nil evaluator uses the default convention.
func NewRunner(out io.Writer, evaluator *field.Evaluator) *Runner {
	if evaluator == nil {
		evaluator = field.NewEvaluator()
	}
	return &Runner{
		out:       out,
		evaluator: evaluator,
	}
}

func (r *Runner) Run(s Scenario) error {
	log.Debugf("running scenario %q with %d charges and %d points", s.Title, len(s.World), len(s.Points))

	if _, err := fmt.Fprintf(r.out, "\n%s\n", s.Title); err != nil {
		return err
	}

	for _, pc := range s.World {
		if _, err := fmt.Fprintf(r.out, "Charge at %s with charge %s\n",
			units.FormatVector(pc.Position), units.FormatWithUnit(pc.Charge, "C")); err != nil {
			return err
		}
	}

	for _, res := range s.Evaluate(r.evaluator) {
		log.Debugf("field at %v is %v", res.Point, res.Field)
		if _, err := fmt.Fprintf(r.out, "Field at %s is %sN/C\n",
			units.FormatVector(res.Point), units.FormatVector(res.Field)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) RunAll(scenarios []Scenario) error {
	for i, s := range scenarios {
		if err := r.Run(s); err != nil {
			return fmt.Errorf("scenario %d (%s): %w", i, s.Title, err)
		}
	}
	return nil
}
