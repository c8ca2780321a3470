package profile

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrDecode wraps YAML decoding failures on profile load.
var ErrDecode = errors.New("decode athlete profile")

// Decode reads a profile from r. Only structurally broken YAML fails;
// missing or oddly typed scalars are tolerated and resolved through the
// defaulting accessors.
func Decode(r io.Reader) (*Athlete, error) {
	var a Athlete
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &a, nil
}

// Warnings lists intake fields that fell back to defaults. These surface
// in logs and on the derived record so a coach can chase the missing data.
func (a *Athlete) Warnings(now time.Time) []string {
	var w []string
	if !a.HasFTP() {
		w = append(w, "no FTP on file, using default for calculations")
	}
	if a.FitnessMarkers.WeightKg == 0 {
		w = append(w, "no weight on file, using default for calculations")
	}
	if a.FitnessMarkers.HeightCm == 0 {
		w = append(w, "no height on file, using default for calculations")
	}
	if int(a.HealthFactors.Age) == 0 && a.Age(now) == DefaultAgeYears {
		w = append(w, "no usable age or birthday, using default")
	}
	if a.AvailableHours() == 0 {
		w = append(w, "no weekly availability on file")
	}
	return w
}
