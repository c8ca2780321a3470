package profile

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Float is a float64 that also accepts quoted YAML scalars ("3.5", "220 ")
// and treats empty or unparseable values as zero. Form exports routinely
// quote numbers, and a single bad field must not fail the whole load.
type Float float64

func (f *Float) UnmarshalYAML(value *yaml.Node) error {
	s := strings.TrimSpace(value.Value)
	if s == "" || s == "~" || strings.EqualFold(s, "null") {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = Float(v)
	return nil
}

// Value returns the raw float, or def when the field was absent or zero.
func (f Float) Value(def float64) float64 {
	if f == 0 {
		return def
	}
	return float64(f)
}

// Int mirrors Float for integer fields. Quoted integers and stray floats
// ("12", 12.0) both coerce; anything else reads as zero.
type Int int

func (i *Int) UnmarshalYAML(value *yaml.Node) error {
	s := strings.TrimSpace(value.Value)
	if s == "" || s == "~" || strings.EqualFold(s, "null") {
		*i = 0
		return nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		*i = Int(v)
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*i = Int(int(v))
		return nil
	}
	*i = 0
	return nil
}

// Value returns the raw int, or def when the field was absent or zero.
func (i Int) Value(def int) int {
	if i == 0 {
		return def
	}
	return int(i)
}
