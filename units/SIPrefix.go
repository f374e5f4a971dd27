package units

import (
	"fmt"
	"math"

	"github.com/kpfaulkner/efield-go/util"
)

// Prefix is one rung of the metric prefix ladder.
type Prefix struct {
	Threshold float64
	Symbol    string
	Name      string
}

// ordered largest to smallest, scanned once by Format.
var prefixes = []Prefix{
	{1e12, "T", "tera"},
	{1e9, "G", "giga"},
	{1e6, "M", "mega"},
	{1e3, "k", "kilo"},
	{1.0, "", ""},
	{1e-3, "m", "milli"},
	{1e-6, "μ", "micro"},
	{1e-9, "n", "nano"},
	{1e-12, "p", "pico"},
	{1e-15, "f", "femto"},
	{1e-18, "a", "atto"},
	{1e-21, "z", "zepto"},
	{1e-24, "y", "yocto"},
}

// Prefixes returns a copy of the prefix table.
func Prefixes() []Prefix {
	p := make([]Prefix, len(prefixes))
	copy(p, prefixes)
	return p
}

// Scale picks the first prefix whose threshold |v| meets and returns v divided
// by it along with the prefix. Anything below yocto (0 and NaN included) comes
// back untouched with ok false.
func Scale(v float64) (scaled float64, prefix Prefix, ok bool) {
	abs := math.Abs(v)
	for _, p := range prefixes {
		if abs >= p.Threshold {
			return v / p.Threshold, p, true
		}
	}
	return v, Prefix{}, false
}

// Format renders v with three decimals and the matching prefix symbol, eg
// 1500 -> "1.500k".
func Format(v float64) string {
	scaled, p, _ := Scale(v)
	return fmt.Sprintf("%.3f%s", scaled, p.Symbol)
}

// FormatWithUnit is Format followed directly by a unit symbol.
func FormatWithUnit(v float64, unit string) string {
	return Format(v) + unit
}

func FormatVector(v util.Vector2) string {
	return fmt.Sprintf("(%s, %s)", Format(v.X), Format(v.Y))
}
