package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kpfaulkner/efield-go/field"
	"github.com/kpfaulkner/efield-go/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoChargeYAML = `
scenarios:
  - title: "Example 19.5: Electric field of two point charges"
    charges:
      - position: [-1.0, 0.0]
        charge: 20.0e-6
      - position: [1, 0]
        charge: -10.0e-6
    points:
      - [2.0, 2.0]
`

func TestLoad(t *testing.T) {
	scenarios, err := Load(strings.NewReader(twoChargeYAML))
	require.NoError(t, err)
	require.Len(t, scenarios, 1)

	expected := Example195()
	s := scenarios[0]
	assert.Equal(t, expected.Title, s.Title)
	assert.Equal(t, expected.World, s.World)
	assert.Equal(t, []util.Vector2{util.NewVector2(2, 2)}, s.Points)
}

func TestLoadErrors(t *testing.T) {
	for _, tc := range []struct {
		name        string
		doc         string
		errContains string
		expectedErr error
	}{
		{
			name:        "empty document",
			doc:         "",
			expectedErr: ErrNoScenarios,
		},
		{
			name:        "no scenarios",
			doc:         "scenarios: []\n",
			expectedErr: ErrNoScenarios,
		},
		{
			name:        "missing title",
			doc:         "scenarios:\n  - charges: [{position: [0, 0], charge: 1}]\n    points: [[1, 1]]\n",
			errContains: "no title",
		},
		{
			name:        "missing charges",
			doc:         "scenarios:\n  - title: a\n    points: [[1, 1]]\n",
			errContains: "no charges",
		},
		{
			name:        "missing points",
			doc:         "scenarios:\n  - title: a\n    charges: [{position: [0, 0], charge: 1}]\n",
			errContains: "no observation points",
		},
		{
			name:        "three component position",
			doc:         "scenarios:\n  - title: a\n    charges: [{position: [0, 0, 0], charge: 1}]\n    points: [[1, 1]]\n",
			errContains: "unable to parse",
		},
		{
			name:        "unknown field",
			doc:         "scenarios:\n  - title: a\n    colour: red\n",
			errContains: "unable to parse",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			scenarios, err := Load(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.Nil(t, scenarios)
			if tc.expectedErr != nil {
				assert.True(t, errors.Is(err, tc.expectedErr), "got %v", err)
			}
			if tc.errContains != "" {
				assert.Contains(t, err.Error(), tc.errContains)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoChargeYAML), 0644))

	scenarios, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)
	assert.Equal(t, field.FieldAt(util.NewVector2(2, 2), Example195().World), scenarios[0].Evaluate(field.NewEvaluator())[0].Field)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
