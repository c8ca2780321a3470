// Package service wires the derivation rules into one engine that the
// CLI and the HTTP API share.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gravelgod/agf/internal/adapters/repository"
	"github.com/gravelgod/agf/internal/config"
	"github.com/gravelgod/agf/internal/domain/calendar"
	"github.com/gravelgod/agf/internal/domain/classify"
	"github.com/gravelgod/agf/internal/domain/model"
	"github.com/gravelgod/agf/internal/domain/nutrition"
	"github.com/gravelgod/agf/internal/domain/plan"
	"github.com/gravelgod/agf/internal/domain/profile"
	"github.com/gravelgod/agf/internal/domain/risk"
	"github.com/gravelgod/agf/internal/intake"
	"github.com/gravelgod/agf/pkg/logger"
	"github.com/gravelgod/agf/pkg/metrics"
)

// Service derives training parameters from athlete profiles.
type Service struct {
	cfg        *config.Config
	classifier *classify.Classifier
	assessor   *risk.Assessor
	calculator *nutrition.Calculator

	store     *repository.Store
	validator *intake.Validator

	now    func() time.Time
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source. Age, FTP staleness and race
// countdowns all key off it.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs the derivation service over a configuration.
func New(cfg *config.Config, opts ...Option) *Service {
	s := &Service{
		cfg:        cfg,
		classifier: classify.New(cfg),
		assessor:   risk.New(cfg),
		calculator: nutrition.New(cfg),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	return s
}

// PlanWeeks resolves the plan length: the profile's explicit value,
// falling back to the configured default.
func (s *Service) PlanWeeks(a *profile.Athlete) int {
	if v := int(a.PlanWeeks); v > 0 {
		return v
	}
	return s.cfg.DefaultPlanWeeks
}

// Derive computes the full derived-parameters record for an athlete.
// The derivation is total over well-formed profiles: missing data falls
// back to defaults and surfaces in Warnings rather than failing.
func (s *Service) Derive(ctx context.Context, a *profile.Athlete) (*model.DerivedParameters, error) {
	start := s.now()
	now := start

	planWeeks := s.PlanWeeks(a)
	schedule, err := plan.Build(planWeeks)
	if err != nil {
		metrics.RecordDerivationError()
		return nil, err
	}

	tier := s.classifier.Tier(a)
	exclusions := a.ExerciseExclusions()
	equipment := s.classifier.EquipmentTier(a)

	d := &model.DerivedParameters{
		AthleteID:     athleteID(a),
		Tier:          tier,
		TierReasoning: s.classifier.TierReasoning(a, tier),
		RiderAbility:  s.classifier.Ability(a, now),
		RiskLevel:     s.assessor.Level(a),
		Limiter:       s.classifier.Limiter(a),
		System:        s.classifier.System(a, tier),

		PlanWeeks:         planWeeks,
		StrengthFrequency: s.classifier.StrengthFrequency(a),
		EquipmentTier:     equipment,

		KeyDayCandidates:      s.classifier.KeyDayCandidates(a),
		StrengthDayCandidates: s.classifier.StrengthDayCandidates(a),
		ExerciseExclusions:    exclusions,

		PhaseSchedule: schedule,
		Nutrition:     s.calculator.Targets(a, now),

		Blindspots:         s.assessor.Blindspots(a, equipment, now),
		CoachingPriorities: s.assessor.Priorities(a, exclusions, now),
		RaceCalendar:       calendar.Build(a, now),

		Warnings: a.Warnings(now),
	}

	metrics.RecordDerivation(string(tier), string(d.RiskLevel))
	metrics.ObserveDerivationDuration(time.Since(start).Seconds())

	s.logger.Info(ctx, "derived athlete parameters",
		logger.String("athleteID", d.AthleteID),
		logger.String("tier", string(d.Tier)),
		logger.String("ability", string(d.RiderAbility)),
		logger.String("risk", string(d.RiskLevel)),
		logger.Int("planWeeks", d.PlanWeeks),
		logger.Int("warnings", len(d.Warnings)),
	)
	return d, nil
}

func athleteID(a *profile.Athlete) string {
	if a.AthleteID != "" {
		return a.AthleteID
	}
	return uuid.NewString()
}
