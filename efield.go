package efield_go

import (
	"io"

	"github.com/kpfaulkner/efield-go/field"
	"github.com/kpfaulkner/efield-go/options"
	"github.com/kpfaulkner/efield-go/scenario"
)

// RunExamples prints the built in worked examples to w. nil opts gives the
// default field convention.
func RunExamples(w io.Writer, opts *options.FieldOptions) error {
	evaluator := field.NewEvaluator(field.WithOptions(opts))
	return scenario.NewRunner(w, evaluator).RunAll(scenario.Builtin())
}
