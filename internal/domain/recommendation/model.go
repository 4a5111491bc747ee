package recommendation

import (
	"time"

	"github.com/google/uuid"
)

// CoronaryRecommendation is reference guidance keyed by the composite
// {age group, gender, risk level}. Seeded out-of-band; the scoring
// engine only reads it.
type CoronaryRecommendation struct {
	ID                   uuid.UUID `db:"id" json:"id"`
	AgeGroup             string    `db:"age_group" json:"age_group"` // "18-30", "31-45", "46-60", "61+"
	Gender               string    `db:"gender" json:"gender"`       // "Male" or "Female"
	RiskLevel            string    `db:"risk_level" json:"risk_level"`
	DietAdjustments      string    `db:"diet_adjustments" json:"diet_adjustments"`
	PhysicalActivity     string    `db:"physical_activity" json:"physical_activity"`
	MedicalInterventions string    `db:"medical_interventions" json:"medical_interventions"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

// StrokeRecommendation is reference guidance keyed by risk level alone.
type StrokeRecommendation struct {
	ID                             uuid.UUID `db:"id" json:"id"`
	RiskLevel                      string    `db:"risk_level" json:"risk_level"`
	DietRecommendation             string    `db:"diet_recommendation" json:"diet_recommendation"`
	MedicalRecommendation          string    `db:"medical_recommendation" json:"medical_recommendation"`
	PhysicalActivityRecommendation string    `db:"physical_activity_recommendation" json:"physical_activity_recommendation"`
	CreatedAt                      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt                      time.Time `db:"updated_at" json:"updated_at"`
}

// NormalizeGender maps sex codes to the stored gender key. "M" and "F"
// normalize to "Male" and "Female"; any other value defaults to "Male".
func NormalizeGender(gender string) string {
	switch gender {
	case "F", "Female":
		return "Female"
	default:
		return "Male"
	}
}
