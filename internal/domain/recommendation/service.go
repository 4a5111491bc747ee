package recommendation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Moderate is the fallback risk level used when no guidance record
// exists for the resolved level.
const Moderate = "Moderate"

type Service struct {
	coronary CoronaryRepository
	stroke   StrokeRepository
}

func NewService(coronary CoronaryRepository, stroke StrokeRepository) *Service {
	return &Service{coronary: coronary, stroke: stroke}
}

// ResolveCoronary looks up guidance by {age group, gender, risk level}.
// Gender is normalized before lookup. When no record matches, the lookup
// retries at Moderate for the same age group and gender; the returned
// bool reports whether that fallback was taken. Both lookups missing
// yields (nil, false, nil): absence of guidance is not an error.
func (s *Service) ResolveCoronary(ctx context.Context, ageGroup, gender, riskLevel string) (*CoronaryRecommendation, bool, error) {
	gender = NormalizeGender(gender)

	rec, err := s.coronary.GetByKey(ctx, ageGroup, gender, riskLevel)
	if err == nil {
		return rec, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, fmt.Errorf("resolve coronary recommendation: %w", err)
	}
	if riskLevel == Moderate {
		return nil, false, nil
	}

	rec, err = s.coronary.GetByKey(ctx, ageGroup, gender, Moderate)
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("resolve coronary recommendation fallback: %w", err)
	}
	return rec, true, nil
}

// ResolveStroke looks up guidance by risk level alone. A missing record
// resolves to nil without error.
func (s *Service) ResolveStroke(ctx context.Context, riskLevel string) (*StrokeRecommendation, error) {
	rec, err := s.stroke.GetByLevel(ctx, riskLevel)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve stroke recommendation: %w", err)
	}
	return rec, nil
}

// Admin CRUD passthroughs.

func (s *Service) UpsertCoronary(ctx context.Context, rec *CoronaryRecommendation) error {
	if err := validateCoronaryKey(rec.AgeGroup, rec.Gender, rec.RiskLevel); err != nil {
		return err
	}
	rec.Gender = NormalizeGender(rec.Gender)
	return s.coronary.Upsert(ctx, rec)
}

func (s *Service) ListCoronary(ctx context.Context, limit, offset int) ([]*CoronaryRecommendation, int, error) {
	return s.coronary.List(ctx, limit, offset)
}

func (s *Service) DeleteCoronary(ctx context.Context, id uuid.UUID) error {
	return s.coronary.Delete(ctx, id)
}

func (s *Service) UpsertStroke(ctx context.Context, rec *StrokeRecommendation) error {
	if rec.RiskLevel == "" {
		return fmt.Errorf("%w: risk_level is required", ErrInvalidKey)
	}
	return s.stroke.Upsert(ctx, rec)
}

func (s *Service) ListStroke(ctx context.Context, limit, offset int) ([]*StrokeRecommendation, int, error) {
	return s.stroke.List(ctx, limit, offset)
}

func (s *Service) DeleteStroke(ctx context.Context, id uuid.UUID) error {
	return s.stroke.Delete(ctx, id)
}

// ErrInvalidKey marks a malformed recommendation key on the admin path.
var ErrInvalidKey = errors.New("invalid recommendation key")

var validAgeGroups = map[string]bool{
	"18-30": true,
	"31-45": true,
	"46-60": true,
	"61+":   true,
}

func validateCoronaryKey(ageGroup, gender, riskLevel string) error {
	if !validAgeGroups[ageGroup] {
		return fmt.Errorf("%w: unknown age group %q", ErrInvalidKey, ageGroup)
	}
	if gender == "" {
		return fmt.Errorf("%w: gender is required", ErrInvalidKey)
	}
	if riskLevel == "" {
		return fmt.Errorf("%w: risk_level is required", ErrInvalidKey)
	}
	return nil
}
