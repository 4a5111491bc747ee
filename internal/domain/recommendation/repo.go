package recommendation

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no record matches a lookup key.
var ErrNotFound = errors.New("recommendation not found")

type CoronaryRepository interface {
	Upsert(ctx context.Context, rec *CoronaryRecommendation) error
	GetByKey(ctx context.Context, ageGroup, gender, riskLevel string) (*CoronaryRecommendation, error)
	List(ctx context.Context, limit, offset int) ([]*CoronaryRecommendation, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type StrokeRepository interface {
	Upsert(ctx context.Context, rec *StrokeRecommendation) error
	GetByLevel(ctx context.Context, riskLevel string) (*StrokeRecommendation, error)
	List(ctx context.Context, limit, offset int) ([]*StrokeRecommendation, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
