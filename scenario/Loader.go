package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kpfaulkner/efield-go/field"
	"github.com/kpfaulkner/efield-go/util"
	"gopkg.in/yaml.v3"
)

var ErrNoScenarios = errors.New("no scenarios defined")

type coord [2]float64

func (c coord) vector() util.Vector2 {
	return util.NewVector2(c[0], c[1])
}

type chargeDef struct {
	Position coord   `yaml:"position"`
	Charge   float64 `yaml:"charge"`
}

type scenarioDef struct {
	Title   string      `yaml:"title"`
	Charges []chargeDef `yaml:"charges"`
	Points  []coord     `yaml:"points"`
}

type scenarioFile struct {
	Scenarios []scenarioDef `yaml:"scenarios"`
}

// Load parses a YAML scenario document. Charges are in coulombs, positions
// and points are [x, y] pairs in metres.
func Load(r io.Reader) ([]Scenario, error) {
	var doc scenarioFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoScenarios
		}
		return nil, fmt.Errorf("unable to parse scenarios: %w", err)
	}

	if len(doc.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	scenarios := make([]Scenario, 0, len(doc.Scenarios))
	for i, def := range doc.Scenarios {
		if def.Title == "" {
			return nil, fmt.Errorf("scenario %d has no title", i)
		}
		if len(def.Charges) == 0 {
			return nil, fmt.Errorf("scenario %q has no charges", def.Title)
		}
		if len(def.Points) == 0 {
			return nil, fmt.Errorf("scenario %q has no observation points", def.Title)
		}

		s := Scenario{
			Title:  def.Title,
			World:  make(field.World, 0, len(def.Charges)),
			Points: make([]util.Vector2, 0, len(def.Points)),
		}
		for _, c := range def.Charges {
			s.World = append(s.World, field.PointCharge{Position: c.Position.vector(), Charge: c.Charge})
		}
		for _, p := range def.Points {
			s.Points = append(s.Points, p.vector())
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func LoadFile(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scenarios, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}
