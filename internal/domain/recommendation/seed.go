package recommendation

import (
	"context"
	"fmt"
)

// Seed loads the baseline guidance catalog. It is idempotent: every row
// goes through the repository upsert, so re-running refreshes text
// without duplicating keys. A Moderate row is written for every
// {age group, gender} pair so the resolver's fallback always lands.
func (s *Service) Seed(ctx context.Context) (int, error) {
	count := 0
	for _, ageGroup := range []string{"18-30", "31-45", "46-60", "61+"} {
		for _, gender := range []string{"Male", "Female"} {
			for _, level := range []string{"Low", "Moderate", "High", "Very High"} {
				rec := &CoronaryRecommendation{
					AgeGroup:             ageGroup,
					Gender:               gender,
					RiskLevel:            level,
					DietAdjustments:      coronaryDiet[level],
					PhysicalActivity:     coronaryActivity[ageGroup],
					MedicalInterventions: coronaryMedical[level],
				}
				if err := s.coronary.Upsert(ctx, rec); err != nil {
					return count, fmt.Errorf("seed coronary %s/%s/%s: %w", ageGroup, gender, level, err)
				}
				count++
			}
		}
	}
	for level, texts := range strokeGuidance {
		rec := &StrokeRecommendation{
			RiskLevel:                      level,
			DietRecommendation:             texts[0],
			MedicalRecommendation:          texts[1],
			PhysicalActivityRecommendation: texts[2],
		}
		if err := s.stroke.Upsert(ctx, rec); err != nil {
			return count, fmt.Errorf("seed stroke %s: %w", level, err)
		}
		count++
	}
	return count, nil
}

var coronaryDiet = map[string]string{
	"Low":       "Maintain a balanced diet rich in vegetables, whole grains and lean protein.",
	"Moderate":  "Reduce saturated fat and sodium; favor fish, legumes and high-fiber foods.",
	"High":      "Adopt a structured low-sodium, low-saturated-fat diet; limit red meat and added sugar.",
	"Very High": "Follow a clinician-supervised cardiac diet plan; eliminate trans fats and restrict sodium under 1500mg/day.",
}

var coronaryActivity = map[string]string{
	"18-30": "At least 150 minutes of moderate aerobic activity weekly plus two strength sessions.",
	"31-45": "150 minutes of moderate aerobic activity weekly; add brisk walking on rest days.",
	"46-60": "Regular moderate exercise such as cycling or swimming, 30 minutes most days.",
	"61+":   "Daily low-impact activity such as walking or water aerobics; include balance work.",
}

var coronaryMedical = map[string]string{
	"Low":       "Routine checkup with lipid panel every 2 years.",
	"Moderate":  "Annual lipid panel and blood pressure review with your physician.",
	"High":      "Discuss statin therapy and blood pressure management with a cardiologist.",
	"Very High": "Urgent cardiology referral; medication review and close blood pressure monitoring.",
}

// strokeGuidance maps risk level to {diet, medical, physical activity}.
var strokeGuidance = map[string][3]string{
	"Low": {
		"Keep a diet low in salt and saturated fat with plenty of fruit and vegetables.",
		"Routine annual checkup; monitor blood pressure at home occasionally.",
		"Stay active with at least 30 minutes of moderate exercise most days.",
	},
	"Moderate": {
		"Cut back on salt, processed foods and alcohol; increase fish and fiber intake.",
		"Schedule a blood pressure and cholesterol review; discuss atrial fibrillation screening.",
		"Build up to 150 minutes of moderate aerobic activity weekly.",
	},
	"High": {
		"Strict low-sodium diet; avoid alcohol and processed meats.",
		"See a physician promptly for blood pressure, cholesterol and rhythm assessment.",
		"Begin a supervised exercise program appropriate to your condition.",
	},
}
