package intake

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gravelgod/agf/internal/intake/ratelimit"
)

// Validation error kinds.
var (
	ErrInvalid     = errors.New("invalid submission")
	ErrRateLimited = errors.New("rate limit exceeded")
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Validator checks submissions and enforces the daily cap.
type Validator struct {
	limiter ratelimit.Limiter
}

// NewValidator builds a Validator. A nil limiter disables rate limiting.
func NewValidator(limiter ratelimit.Limiter) *Validator {
	return &Validator{limiter: limiter}
}

// Validate checks a submission and returns every problem found. A valid
// submission is recorded against the rate limit; the returned error is
// ErrRateLimited or ErrInvalid wrapping the first problem.
func (v *Validator) Validate(ctx context.Context, f *Form) ([]string, error) {
	var problems []string

	if f.Name == "" {
		problems = append(problems, "Missing required field: name")
	}
	if f.Email == "" {
		problems = append(problems, "Missing required field: email")
	} else if msg := checkEmail(f.Email); msg != "" {
		problems = append(problems, msg)
	}
	if f.PrimaryGoal == "" {
		problems = append(problems, "Missing required field: primary_goal")
	}

	if f.PrimaryGoal == "specific_race" && (f.RaceName == "" || f.RaceDate == "") {
		problems = append(problems, "Race name and date required for specific race goal")
	}

	if age := int(f.Age); age != 0 && (age < 18 || age > 99) {
		problems = append(problems, "Age must be between 18 and 99")
	}

	if hours := maxVolumeHours(f.WeeklyVolume); hours < 0 || hours > 40 {
		problems = append(problems, "Weekly hours must be between 0 and 40")
	}

	if f.availableDays() < 3 {
		problems = append(problems, "At least 3 days per week must be available for training")
	}

	if len(problems) > 0 {
		return problems, fmt.Errorf("%w: %s", ErrInvalid, problems[0])
	}

	if v.limiter != nil && !v.limiter.AllowAndRecord(ctx, f.Email) {
		return []string{"Rate limit exceeded. Maximum submissions per day reached."}, ErrRateLimited
	}
	return nil, nil
}

func checkEmail(email string) string {
	if !emailPattern.MatchString(email) {
		return "Invalid email format"
	}
	return ""
}

// maxVolumeHours resolves a volume answer like "9-12", "15+" or "8" to
// the upper bound in hours. Unparseable input reads as zero.
func maxVolumeHours(volume string) int {
	volume = strings.TrimSpace(volume)
	if volume == "" {
		return 0
	}
	if strings.HasSuffix(volume, "+") {
		return 40
	}
	if i := strings.Index(volume, "-"); i >= 0 {
		if v, err := strconv.Atoi(strings.TrimSpace(volume[i+1:])); err == nil {
			return v
		}
		return 40
	}
	if v, err := strconv.Atoi(volume); err == nil {
		return v
	}
	return 0
}
