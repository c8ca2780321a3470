package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gravelgod/agf/internal/adapters/repository"
	"github.com/gravelgod/agf/internal/domain/model"
	"github.com/gravelgod/agf/internal/intake"
	"github.com/gravelgod/agf/pkg/logger"
	"github.com/gravelgod/agf/pkg/metrics"
)

// ErrNotConfigured is returned when an operation needs a dependency the
// service was built without.
var ErrNotConfigured = errors.New("service dependency not configured")

// WithStore sets the athlete store used by intake and lookups.
func WithStore(store *repository.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithValidator sets the intake validator.
func WithValidator(v *intake.Validator) Option {
	return func(s *Service) {
		s.validator = v
	}
}

// Submit validates a form submission, converts it to a profile, derives
// parameters and persists both files. Validation problems come back as
// the string slice with a non-nil error.
func (s *Service) Submit(ctx context.Context, f *intake.Form) (*model.DerivedParameters, []string, error) {
	if s.store == nil || s.validator == nil {
		return nil, nil, ErrNotConfigured
	}

	problems, err := s.validator.Validate(ctx, f)
	if err != nil {
		if errors.Is(err, intake.ErrRateLimited) {
			metrics.RecordIntakeRateLimited()
		} else {
			metrics.RecordIntakeRejected()
		}
		s.logger.Warn(ctx, "rejected intake submission",
			logger.String("email", f.Email),
			logger.Int("problems", len(problems)),
		)
		return nil, problems, err
	}

	a := f.Convert(s.now())
	d, err := s.Derive(ctx, a)
	if err != nil {
		return nil, nil, fmt.Errorf("derive submission: %w", err)
	}

	if err := s.store.SaveProfile(ctx, a); err != nil {
		return nil, nil, err
	}
	if err := s.store.SaveDerived(ctx, d); err != nil {
		return nil, nil, err
	}

	metrics.RecordIntakeAccepted()
	s.logger.Info(ctx, "accepted intake submission",
		logger.String("athleteID", a.AthleteID),
	)
	return d, nil, nil
}

// DerivedFor returns the stored derived parameters for an athlete,
// deriving fresh from the profile when no derived file exists yet.
func (s *Service) DerivedFor(ctx context.Context, athleteID string) (*model.DerivedParameters, error) {
	if s.store == nil {
		return nil, ErrNotConfigured
	}
	d, err := s.store.LoadDerived(ctx, athleteID)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	a, err := s.store.LoadProfile(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	return s.Derive(ctx, a)
}

// Rederive loads an athlete's profile, derives fresh parameters and
// overwrites the stored derived file.
func (s *Service) Rederive(ctx context.Context, athleteID string) (*model.DerivedParameters, error) {
	if s.store == nil {
		return nil, ErrNotConfigured
	}
	a, err := s.store.LoadProfile(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	d, err := s.Derive(ctx, a)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveDerived(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Athletes lists athlete IDs present in the store.
func (s *Service) Athletes(ctx context.Context) ([]string, error) {
	if s.store == nil {
		return nil, ErrNotConfigured
	}
	return s.store.List(ctx)
}

// GetStats returns service statistics for the stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	stats := map[string]interface{}{
		"default_plan_weeks":      s.cfg.DefaultPlanWeeks,
		"max_submissions_per_day": s.cfg.MaxSubmissionsPerDay,
	}
	if s.store != nil {
		if ids, err := s.store.List(context.Background()); err == nil {
			stats["athletes"] = len(ids)
		}
	}
	return stats
}
