package field

import (
	"github.com/kpfaulkner/efield-go/util"
)

const (
	// K is Coulomb's constant in N·m²/C².
	K = 9e9

	Micro = 1e-6
	Nano  = 1e-9
)

// PointCharge is a charge in coulombs concentrated at Position.
type PointCharge struct {
	Position util.Vector2
	Charge   float64
}

func NewPointCharge(x float64, y float64, charge float64) PointCharge {
	return PointCharge{
		Position: util.NewVector2(x, y),
		Charge:   charge,
	}
}

// World is an ordered set of charges for a single scenario. Treat as read only.
type World []PointCharge

// Scaled returns a copy of the world with every charge multiplied by c.
func (w World) Scaled(c float64) World {
	scaled := make(World, len(w))
	for i, pc := range w {
		scaled[i] = PointCharge{Position: pc.Position, Charge: pc.Charge * c}
	}
	return scaled
}

// TotalCharge sums the charge of every member.
func (w World) TotalCharge() float64 {
	total := 0.0
	for _, pc := range w {
		total += pc.Charge
	}
	return total
}
