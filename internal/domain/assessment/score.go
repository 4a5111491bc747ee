package assessment

import "math"

// Score formulas. Each function is pure: validated inputs in, numbers out.
// Coefficients are fixed clinical reference constants and are not
// configurable at runtime.

// CoronaryInput holds the raw clinical inputs for a coronary risk evaluation.
type CoronaryInput struct {
	Gender           string  `json:"gender"` // "M", "F" or "O"
	Age              int     `json:"age"`
	Race             int     `json:"race"` // 0 or 1
	SystolicBP       float64 `json:"systolic_bp"`
	OnHypertensionMed bool   `json:"on_hypertension_med"`
	Diabetes         bool    `json:"diabetes"`
	Smoker           bool    `json:"smoker"`
	TotalCholesterol float64 `json:"total_cholesterol"`
	HDLCholesterol   float64 `json:"hdl_cholesterol"`
}

// Female and male logistic regression coefficients for the ten-year
// coronary event model. Terms: intercept, age, race indicator, systolic
// blood pressure, systolic pressure squared, age x race interaction,
// hypertension treatment, diabetes, smoking, total/HDL cholesterol ratio.
var (
	coronaryFemale = coronaryCoefficients{
		Intercept: -12.2034,
		Age:       0.0675,
		Race:      0.2767,
		SBP:       0.0277,
		SBPSq:     -0.000088,
		AgeRace:   -0.0035,
		HTNMed:    0.5817,
		Diabetes:  0.7348,
		Smoker:    0.6398,
		CholRatio: 0.4298,
	}
	coronaryMale = coronaryCoefficients{
		Intercept: -11.6092,
		Age:       0.0563,
		Race:      0.3211,
		SBP:       0.0243,
		SBPSq:     -0.000061,
		AgeRace:   -0.0041,
		HTNMed:    0.4732,
		Diabetes:  0.6525,
		Smoker:    0.5033,
		CholRatio: 0.4853,
	}
)

type coronaryCoefficients struct {
	Intercept float64
	Age       float64
	Race      float64
	SBP       float64
	SBPSq     float64
	AgeRace   float64
	HTNMed    float64
	Diabetes  float64
	Smoker    float64
	CholRatio float64
}

func (c coronaryCoefficients) logit(in CoronaryInput) float64 {
	ratio := in.TotalCholesterol / in.HDLCholesterol
	l := c.Intercept +
		c.Age*float64(in.Age) +
		c.Race*float64(in.Race) +
		c.SBP*in.SystolicBP +
		c.SBPSq*in.SystolicBP*in.SystolicBP +
		c.AgeRace*float64(in.Age)*float64(in.Race) +
		c.CholRatio*ratio
	if in.OnHypertensionMed {
		l += c.HTNMed
	}
	if in.Diabetes {
		l += c.Diabetes
	}
	if in.Smoker {
		l += c.Smoker
	}
	return l
}

// CoronaryRiskPercentage converts the logit matching the subject's sex
// code to a percentage in [0,100], rounded to two decimal places.
// Gender "F" selects the female model; every other value the male model.
func CoronaryRiskPercentage(in CoronaryInput) float64 {
	coeffs := coronaryMale
	if in.Gender == "F" {
		coeffs = coronaryFemale
	}
	pct := 100 / (1 + math.Exp(-coeffs.logit(in)))
	return math.Round(pct*100) / 100
}

// DiabeticInput holds the four pre-scored questionnaire sub-scores.
type DiabeticInput struct {
	AgeScore              int `json:"age_score"`
	WaistScore            int `json:"waist_score"`
	PhysicalActivityScore int `json:"physical_activity_score"`
	FamilyHistoryScore    int `json:"family_history_score"`
}

// DiabeticTotalScore is the sum of the four sub-scores.
func DiabeticTotalScore(in DiabeticInput) int {
	return in.AgeScore + in.WaistScore + in.PhysicalActivityScore + in.FamilyHistoryScore
}

// LiverDietaryHabits is the flag bundle for the liver questionnaire.
type LiverDietaryHabits struct {
	RegularMeals   bool `json:"regular_meals"`
	FrequentSnacks bool `json:"frequent_snacks"`
	ProcessedFoods bool `json:"processed_foods"`
	SodaJuices     bool `json:"soda_juices"`
	RestaurantFood bool `json:"restaurant_food"`
}

// LiverInput holds the structured liver risk-factor questionnaire.
type LiverInput struct {
	Age               string             `json:"age"` // "Under 40", "40-60", "Over 60"
	RiskReasons       []string           `json:"risk_reasons"`
	Diabetes          string             `json:"diabetes"`            // "Yes"/"No"
	HighBloodPressure string             `json:"high_blood_pressure"` // "Yes"/"No"
	Exercise          string             `json:"exercise"`
	Alcohol           string             `json:"alcohol"`
	DietaryHabits     LiverDietaryHabits `json:"dietary_habits"`
}

var liverAgePoints = map[string]int{
	"Under 40": 0,
	"40-60":    1,
	"Over 60":  2,
}

var liverReasonPoints = map[string]int{
	"I drink alcohol frequently":                 3,
	"I have hepatitis B or C":                    3,
	"I have a family history of liver disease":   3,
	"I am overweight":                            2,
	"I take medications on a long-term basis":    2,
	"I have high cholesterol":                    2,
}

var liverExercisePoints = map[string]int{
	"Daily":            0,
	"Few times a week": 1,
	"Rarely":           2,
	"Never":            3,
}

var liverAlcoholPoints = map[string]int{
	"Never":                0,
	"Rarely":               1,
	"1-2 Times per Week":   2,
	"3-4 Times per Week":   3,
	"Over 4 Times per Week": 4,
}

// LiverRiskScore adds fixed point values for every matched risk factor.
func LiverRiskScore(in LiverInput) int {
	score := liverAgePoints[in.Age]
	for _, reason := range in.RiskReasons {
		score += liverReasonPoints[reason]
	}
	if in.Diabetes == "Yes" {
		score += 2
	}
	if in.HighBloodPressure == "Yes" {
		score++
	}
	score += liverExercisePoints[in.Exercise]
	score += liverAlcoholPoints[in.Alcohol]

	d := in.DietaryHabits
	if !d.RegularMeals {
		score++
	}
	if d.FrequentSnacks {
		score++
	}
	if d.ProcessedFoods {
		score += 2
	}
	if d.SodaJuices {
		score += 2
	}
	if d.RestaurantFood {
		score++
	}
	return score
}

// Stroke answer values.
const (
	StrokeHigher = "higher"
	StrokeLower  = "lower"
)

// StrokeInput holds the ten higher/lower questionnaire answers. Absent
// answers are empty strings and count toward neither score.
type StrokeInput struct {
	BloodPressure      string `json:"blood_pressure"`
	AtrialFibrillation string `json:"atrial_fibrillation"`
	Smoking            string `json:"smoking"`
	Cholesterol        string `json:"cholesterol"`
	Diabetes           string `json:"diabetes"`
	PhysicalActivity   string `json:"physical_activity"`
	Weight             string `json:"weight"`
	Diet               string `json:"diet"`
	Alcohol            string `json:"alcohol"`
	FamilyHistory      string `json:"family_history"`
}

func (in StrokeInput) answers() []string {
	return []string{
		in.BloodPressure, in.AtrialFibrillation, in.Smoking, in.Cholesterol,
		in.Diabetes, in.PhysicalActivity, in.Weight, in.Diet,
		in.Alcohol, in.FamilyHistory,
	}
}

const (
	strokeHigherAdvisory = "You have several factors that raise your stroke risk. Work with your care team on a risk reduction plan and address the highlighted factors."
	strokeLowerAdvisory  = "Your answers indicate a lower stroke risk. Keep up your current habits and consult your care provider to confirm your risk profile."
)

// StrokeScores counts the "higher" and "lower" answers and chooses the
// advisory message by comparing the two counts.
func StrokeScores(in StrokeInput) (higher, lower int, desc string) {
	for _, a := range in.answers() {
		switch a {
		case StrokeHigher:
			higher++
		case StrokeLower:
			lower++
		}
	}
	if higher > lower {
		desc = strokeHigherAdvisory
	} else {
		desc = strokeLowerAdvisory
	}
	return higher, lower, desc
}
