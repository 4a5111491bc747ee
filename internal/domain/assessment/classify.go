package assessment

// Risk level labels shared across diseases.
const (
	LevelLow      = "Low"
	LevelModerate = "Moderate"
	LevelHigh     = "High"
	LevelVeryHigh = "Very High"
)

// Diabetic advisory strings. The classifier returns the full advisory
// sentence, not the short label; legacy data is normalized by the
// offline normalize-risk-levels job.
const (
	DiabeticVeryHighAdvisory = "Very HIGH RISK of developing type 2 diabetes. Please consult a physician for a blood glucose test as soon as possible."
	DiabeticModerateAdvisory = "MODERATE risk of developing type 2 diabetes. Lifestyle changes are recommended; discuss prevention with your care provider."
	DiabeticLowAdvisory      = "LOW risk of developing type 2 diabetes. Maintain your current lifestyle and recheck periodically."
)

// Liver levels are stored upper-cased.
const (
	LiverLevelLow      = "LOW"
	LiverLevelModerate = "MODERATE"
	LiverLevelHigh     = "HIGH"
)

// Classifier maps numeric scores to categorical risk levels. A single
// value is constructed at wiring time and injected everywhere a
// classification is needed; call sites never reimplement thresholds.
type Classifier interface {
	CoronaryLevel(riskPercentage float64) string
	CoronaryAgeGroup(age int) string
	DiabeticLevel(totalScore int) string
	LiverLevel(riskScore int) string
	StrokeLevelByMean(lowerScore, higherScore int) string
	StrokeLevelBySum(lowerScore, higherScore int) string
}

// StandardClassifier implements the reference thresholds. It is pure and
// stateless; identical input always yields identical output.
type StandardClassifier struct{}

// NewClassifier returns the standard threshold classifier.
func NewClassifier() StandardClassifier { return StandardClassifier{} }

func (StandardClassifier) CoronaryLevel(riskPercentage float64) string {
	switch {
	case riskPercentage < 10:
		return LevelLow
	case riskPercentage < 20:
		return LevelModerate
	case riskPercentage < 30:
		return LevelHigh
	default:
		return LevelVeryHigh
	}
}

func (StandardClassifier) CoronaryAgeGroup(age int) string {
	switch {
	case age <= 30:
		return "18-30"
	case age <= 45:
		return "31-45"
	case age <= 60:
		return "46-60"
	default:
		return "61+"
	}
}

// DiabeticLevel intentionally leaves scores in (50,60) on the low
// advisory: the moderate band is a closed [30,50] interval and the very
// high band starts at 60. Flagged for product review, preserved as-is.
func (StandardClassifier) DiabeticLevel(totalScore int) string {
	switch {
	case totalScore >= 60:
		return DiabeticVeryHighAdvisory
	case totalScore >= 30 && totalScore <= 50:
		return DiabeticModerateAdvisory
	default:
		return DiabeticLowAdvisory
	}
}

func (StandardClassifier) LiverLevel(riskScore int) string {
	switch {
	case riskScore > 15:
		return LiverLevelHigh
	case riskScore > 8:
		return LiverLevelModerate
	default:
		return LiverLevelLow
	}
}

// StrokeLevelByMean classifies by the mean of the two counts. This is
// the rule the history read path uses for records without a stored
// level. It disagrees with StrokeLevelBySum for the same scores; both
// are kept as named alternatives pending product clarification.
func (StandardClassifier) StrokeLevelByMean(lowerScore, higherScore int) string {
	mean := float64(lowerScore+higherScore) / 2
	switch {
	case mean < 25:
		return LevelLow
	case mean <= 50:
		return LevelModerate
	default:
		return LevelHigh
	}
}

// StrokeLevelBySum classifies by the sum of the two counts with
// different cutpoints than the mean rule.
func (StandardClassifier) StrokeLevelBySum(lowerScore, higherScore int) string {
	sum := lowerScore + higherScore
	switch {
	case sum <= 2:
		return LevelLow
	case sum <= 6:
		return LevelModerate
	default:
		return LevelHigh
	}
}
