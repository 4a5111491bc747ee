package assessment

import (
	"context"

	"github.com/google/uuid"
)

// Repositories are append-only: assessments are created and listed,
// never updated or deleted.

type CoronaryRepository interface {
	Create(ctx context.Context, a *CoronaryAssessment) error
	ListBySubject(ctx context.Context, subjectID uuid.UUID, limit int) ([]*CoronaryAssessment, error)
}

type DiabeticRepository interface {
	Create(ctx context.Context, a *DiabeticAssessment) error
	ListBySubject(ctx context.Context, subjectID uuid.UUID, limit int) ([]*DiabeticAssessment, error)
}

type LiverRepository interface {
	Create(ctx context.Context, a *LiverAssessment) error
	ListBySubject(ctx context.Context, subjectID uuid.UUID, limit int) ([]*LiverAssessment, error)
}

type StrokeRepository interface {
	Create(ctx context.Context, a *StrokeAssessment) error
	ListBySubject(ctx context.Context, subjectID uuid.UUID, limit int) ([]*StrokeAssessment, error)
}

// Subject is the demographic slice of a patient record the history path
// needs for recommendation lookups.
type Subject struct {
	ID     uuid.UUID
	Gender string
	Age    int // 0 when unknown
}

// SubjectDirectory resolves subject demographics. Implemented by the
// EMR service; the history path treats a missing subject as unknown
// demographics, not an error.
type SubjectDirectory interface {
	Subject(ctx context.Context, id uuid.UUID) (*Subject, error)
}

// CoronaryGuidance and StrokeGuidance are the resolver outputs joined
// onto history views.
type CoronaryGuidance struct {
	DietAdjustments      string
	PhysicalActivity     string
	MedicalInterventions string
	FallbackUsed         bool
}

type StrokeGuidance struct {
	DietRecommendation             string
	MedicalRecommendation          string
	PhysicalActivityRecommendation string
}

// RecommendationSource resolves stored guidance records. A nil result
// with a nil error means no guidance is available.
type RecommendationSource interface {
	CoronaryRecommendation(ctx context.Context, ageGroup, gender, riskLevel string) (*CoronaryGuidance, error)
	StrokeRecommendation(ctx context.Context, riskLevel string) (*StrokeGuidance, error)
}
