package testcommon

import (
	"testing"

	"github.com/kpfaulkner/efield-go/util"
	"github.com/stretchr/testify/assert"
)

// AssertVectorInEpsilon checks both components are within relative error eps.
// A zero expected component is compared with an absolute tolerance of eps instead.
func AssertVectorInEpsilon(t *testing.T, expected util.Vector2, actual util.Vector2, eps float64) bool {
	t.Helper()
	okX := assertComponent(t, "X", expected.X, actual.X, eps)
	okY := assertComponent(t, "Y", expected.Y, actual.Y, eps)
	return okX && okY
}

func assertComponent(t *testing.T, name string, expected float64, actual float64, eps float64) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, eps, "component %s", name)
	}
	return assert.InEpsilon(t, expected, actual, eps, "component %s", name)
}
