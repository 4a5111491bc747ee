package assessment

import (
	"time"

	"github.com/google/uuid"
)

// Record is the shared assessment envelope. Every disease-specific
// assessment embeds it; the per-disease payload carries the inputs and
// computed scores. Assessments are append-only: no update, no delete.
type Record struct {
	ID        uuid.UUID `db:"id" json:"id"`
	SubjectID uuid.UUID `db:"subject_id" json:"subject_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CoronaryAssessment maps to the coronary_assessment table.
type CoronaryAssessment struct {
	Record
	CoronaryInput
	RiskPercentage float64 `db:"risk_percentage" json:"risk_percentage"`
}

// DiabeticAssessment maps to the diabetic_assessment table. The risk
// level is stored at write time.
type DiabeticAssessment struct {
	Record
	DiabeticInput
	TotalScore int    `db:"total_score" json:"total_score"`
	RiskLevel  string `db:"risk_level" json:"risk_level"`
}

// LiverAssessment maps to the liver_assessment table. The risk level is
// stored at write time.
type LiverAssessment struct {
	Record
	LiverInput
	RiskScore int    `db:"risk_score" json:"risk_score"`
	RiskLevel string `db:"risk_level" json:"risk_level"`
}

// StrokeAssessment maps to the stroke_assessment table. The risk level
// is derived at read time from the stored score pair.
type StrokeAssessment struct {
	Record
	StrokeInput
	HigherRiskScore int    `db:"higher_risk_score" json:"higher_risk_score"`
	LowerRiskScore  int    `db:"lower_risk_score" json:"lower_risk_score"`
	Desc            string `db:"description" json:"desc"`
}

// Recommendation is the guidance text joined onto a history entry. Nil
// on a view means no guidance is available for that combination.
type Recommendation struct {
	DietAdjustments      string `json:"diet_adjustments,omitempty"`
	PhysicalActivity     string `json:"physical_activity,omitempty"`
	MedicalInterventions string `json:"medical_interventions,omitempty"`
	Note                 string `json:"note,omitempty"`
}

// CoronaryView is one coronary history entry: stored scores joined with
// the derived risk level and resolved recommendation.
type CoronaryView struct {
	CoronaryAssessment
	RiskLevel      string          `json:"risk_level"`
	Recommendation *Recommendation `json:"recommendation"`
}

// StrokeView is one stroke history entry.
type StrokeView struct {
	StrokeAssessment
	RiskLevel      string          `json:"risk_level"`
	Recommendation *Recommendation `json:"recommendation"`
}
