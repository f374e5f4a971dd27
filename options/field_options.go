package options

import (
	"fmt"
	"strings"
)

// Convention selects which way the displacement vector points when a
// charge's contribution is summed.
type Convention int

const (
	// TowardSource points from the observation point to the charge. This is
	// what the worked examples were originally printed with.
	TowardSource Convention = iota

	// PhysicalConvention points from the charge to the observation point, so
	// the field points away from positive charges.
	PhysicalConvention
)

func (c Convention) String() string {
	switch c {
	case TowardSource:
		return "source"
	case PhysicalConvention:
		return "physical"
	default:
		return fmt.Sprintf("Convention(%d)", int(c))
	}
}

// ParseConvention accepts "source" or "physical", case insensitive. Empty
// string gives the default.
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "source":
		return TowardSource, nil
	case "physical":
		return PhysicalConvention, nil
	}
	return TowardSource, fmt.Errorf("unknown field convention %q", s)
}

type FieldOptions struct {
	Convention Convention

	// Debug logs every charge contribution.
	Debug bool
}

func NewFieldOptions(options *FieldOptions) *FieldOptions {

	opt := &FieldOptions{}
	if options != nil {
		opt.Convention = options.Convention
		opt.Debug = options.Debug
	}
	return opt
}
