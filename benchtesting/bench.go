package main

import (
	"fmt"
	"time"

	"github.com/kpfaulkner/efield-go/field"
	"github.com/kpfaulkner/efield-go/scenario"
	"github.com/kpfaulkner/efield-go/units"
	"github.com/kpfaulkner/efield-go/util"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {

	//p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	spec := field.GridSpec{
		Min:    util.NewVector2(-5, -5),
		Max:    util.NewVector2(5, 5),
		Width:  1000,
		Height: 1000,
	}

	evaluator := field.NewEvaluator()
	for _, s := range scenario.Builtin() {
		start := time.Now()
		for count := 0; count < 10; count++ {
			m, err := evaluator.SampleGrid(s.World, spec)
			if err != nil {
				log.Errorf("Error sampling grid: %v\n", err)
				return
			}
			if count == 0 {
				// grid points can land on a charge, max is then NaN/Inf
				fmt.Printf("%s: min %sN/C max %sN/C\n", s.Title, units.Format(m.MinValue()), units.Format(m.MaxValue()))
			}
		}
		fmt.Printf("sampling took %d ms\n", time.Since(start).Milliseconds())
	}
}
