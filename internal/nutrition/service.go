package nutrition

import (
	"context"
	"encoding/json"

	"nourishcoach/internal/kvstore"
	"nourishcoach/internal/metrics"
)

// lastProfileKey is the feature's namespace in the key-value store.
const lastProfileKey = "nutrition:calc"

type Service interface {
	// Targets computes macros and remembers the inputs as the calculator's
	// last-used profile.
	Targets(ctx context.Context, profile BiometricProfile) (MacroTargets, error)

	// LastProfile returns the last-used inputs, normalized, or the default
	// profile when none was stored.
	LastProfile(ctx context.Context) (BiometricProfile, error)

	// BMI classifies height/weight; nil when inputs are incomplete.
	BMI(ctx context.Context, heightCm, weightKg float64, table BMITable) *BMIResult
}

type service struct {
	store kvstore.Store
}

func NewService(store kvstore.Store) Service {
	return &service{store: store}
}

func (s *service) Targets(ctx context.Context, profile BiometricProfile) (MacroTargets, error) {
	targets := ComputeTargets(profile)
	metrics.RecordCalculator("macros")

	// Persist the normalized inputs so a reload restores the same numbers
	// the defaults produced.
	data, err := json.Marshal(profile.Normalize())
	if err != nil {
		return targets, err
	}
	if err := s.store.Put(ctx, lastProfileKey, data); err != nil {
		return targets, err
	}

	return targets, nil
}

func (s *service) LastProfile(ctx context.Context) (BiometricProfile, error) {
	data, ok, err := s.store.Get(ctx, lastProfileKey)
	if err != nil {
		return BiometricProfile{}.Normalize(), err
	}
	if !ok {
		return BiometricProfile{}.Normalize(), nil
	}

	var profile BiometricProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		// A corrupt stored profile degrades to the defaults.
		return BiometricProfile{}.Normalize(), nil
	}

	return profile.Normalize(), nil
}

func (s *service) BMI(ctx context.Context, heightCm, weightKg float64, table BMITable) *BMIResult {
	metrics.RecordCalculator("bmi")
	return ClassifyBMI(heightCm, weightKg, table)
}
