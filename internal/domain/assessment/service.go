package assessment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultHistoryLimit is the number of assessments a history call
// returns when the caller does not specify one.
const DefaultHistoryLimit = 10

// defaultSubjectAge is used for the age-group lookup key when the
// subject's age is unknown.
const defaultSubjectAge = 45

// AlertSink receives a notification when an assessment classifies as
// high risk. A nil sink disables alerts.
type AlertSink interface {
	HighRiskAlert(ctx context.Context, subjectID uuid.UUID, disease, riskLevel string)
}

// Service orchestrates scoring: validate input, compute the score,
// classify, persist, and on reads join stored assessments with resolved
// recommendations.
type Service struct {
	coronary CoronaryRepository
	diabetic DiabeticRepository
	liver    LiverRepository
	stroke   StrokeRepository

	subjects   SubjectDirectory
	classifier Classifier
	recs       RecommendationSource
	alerts     AlertSink
}

func NewService(c CoronaryRepository, d DiabeticRepository, l LiverRepository, s StrokeRepository,
	subjects SubjectDirectory, classifier Classifier, recs RecommendationSource) *Service {
	return &Service{
		coronary:   c,
		diabetic:   d,
		liver:      l,
		stroke:     s,
		subjects:   subjects,
		classifier: classifier,
		recs:       recs,
	}
}

// SetAlertSink attaches an optional high-risk alert sink.
func (s *Service) SetAlertSink(a AlertSink) { s.alerts = a }

// -- Coronary --

var validGenders = map[string]bool{"M": true, "F": true, "O": true}

func validateCoronary(in CoronaryInput) error {
	if !validGenders[in.Gender] {
		return invalid("gender", "must be M, F or O")
	}
	if in.Age <= 0 {
		return invalid("age", "must be positive")
	}
	if in.Race != 0 && in.Race != 1 {
		return invalid("race", "must be 0 or 1")
	}
	if in.SystolicBP <= 0 {
		return invalid("systolic_bp", "must be positive")
	}
	if in.TotalCholesterol <= 0 {
		return invalid("total_cholesterol", "must be positive")
	}
	// A zero denominator would make the cholesterol ratio non-finite, so
	// HDL must be strictly positive.
	if in.HDLCholesterol <= 0 {
		return invalid("hdl_cholesterol", "must be positive")
	}
	return nil
}

func (s *Service) CreateCoronary(ctx context.Context, subjectID uuid.UUID, in CoronaryInput) (*CoronaryAssessment, error) {
	if subjectID == uuid.Nil {
		return nil, invalid("subject_id", "is required")
	}
	if err := validateCoronary(in); err != nil {
		return nil, err
	}
	a := &CoronaryAssessment{
		Record:         Record{SubjectID: subjectID},
		CoronaryInput:  in,
		RiskPercentage: CoronaryRiskPercentage(in),
	}
	if err := s.coronary.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("persist coronary assessment: %w", err)
	}
	s.notifyIfHigh(ctx, subjectID, "coronary", s.classifier.CoronaryLevel(a.RiskPercentage))
	return a, nil
}

// CoronaryHistory returns the most recent assessments for a subject,
// newest first, each joined with a derived risk level and a resolved
// recommendation. An unknown subject yields an empty slice.
func (s *Service) CoronaryHistory(ctx context.Context, subjectID uuid.UUID, limit int) ([]*CoronaryView, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	items, err := s.coronary.ListBySubject(ctx, subjectID, limit)
	if err != nil {
		return nil, fmt.Errorf("list coronary assessments: %w", err)
	}
	if len(items) == 0 {
		return []*CoronaryView{}, nil
	}

	ageGroup, gender := s.subjectKey(ctx, subjectID)

	views := make([]*CoronaryView, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, a := range items {
		i, a := i, a
		g.Go(func() error {
			level := s.classifier.CoronaryLevel(a.RiskPercentage)
			view := &CoronaryView{CoronaryAssessment: *a, RiskLevel: level}
			guidance, err := s.recs.CoronaryRecommendation(gctx, ageGroup, gender, level)
			if err != nil {
				return fmt.Errorf("resolve coronary recommendation: %w", err)
			}
			if guidance != nil {
				view.Recommendation = &Recommendation{
					DietAdjustments:      guidance.DietAdjustments,
					PhysicalActivity:     guidance.PhysicalActivity,
					MedicalInterventions: guidance.MedicalInterventions,
				}
				if guidance.FallbackUsed {
					view.Recommendation.Note = "default moderate-risk guidance"
				}
			}
			views[i] = view
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

// -- Diabetic --

func validateDiabetic(in DiabeticInput) error {
	for _, f := range []struct {
		name  string
		value int
	}{
		{"age_score", in.AgeScore},
		{"waist_score", in.WaistScore},
		{"physical_activity_score", in.PhysicalActivityScore},
		{"family_history_score", in.FamilyHistoryScore},
	} {
		if f.value < 0 {
			return invalid(f.name, "must not be negative")
		}
	}
	return nil
}

func (s *Service) CreateDiabetic(ctx context.Context, subjectID uuid.UUID, in DiabeticInput) (*DiabeticAssessment, error) {
	if subjectID == uuid.Nil {
		return nil, invalid("subject_id", "is required")
	}
	if err := validateDiabetic(in); err != nil {
		return nil, err
	}
	total := DiabeticTotalScore(in)
	a := &DiabeticAssessment{
		Record:        Record{SubjectID: subjectID},
		DiabeticInput: in,
		TotalScore:    total,
		RiskLevel:     s.classifier.DiabeticLevel(total),
	}
	if err := s.diabetic.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("persist diabetic assessment: %w", err)
	}
	s.notifyIfHigh(ctx, subjectID, "diabetic", a.RiskLevel)
	return a, nil
}

// DiabeticHistory returns stored assessments newest first. Records from
// before risk levels were stored get one derived from the stored score.
func (s *Service) DiabeticHistory(ctx context.Context, subjectID uuid.UUID, limit int) ([]*DiabeticAssessment, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	items, err := s.diabetic.ListBySubject(ctx, subjectID, limit)
	if err != nil {
		return nil, fmt.Errorf("list diabetic assessments: %w", err)
	}
	for _, a := range items {
		if a.RiskLevel == "" {
			a.RiskLevel = s.classifier.DiabeticLevel(a.TotalScore)
		}
	}
	if items == nil {
		items = []*DiabeticAssessment{}
	}
	return items, nil
}

// -- Liver --

func validateLiver(in LiverInput) error {
	if _, ok := liverAgePoints[in.Age]; !ok {
		return invalid("age", "unknown age bracket")
	}
	if in.Diabetes != "Yes" && in.Diabetes != "No" {
		return invalid("diabetes", "must be Yes or No")
	}
	if in.HighBloodPressure != "Yes" && in.HighBloodPressure != "No" {
		return invalid("high_blood_pressure", "must be Yes or No")
	}
	if _, ok := liverExercisePoints[in.Exercise]; !ok {
		return invalid("exercise", "unknown exercise frequency")
	}
	if _, ok := liverAlcoholPoints[in.Alcohol]; !ok {
		return invalid("alcohol", "unknown alcohol frequency")
	}
	return nil
}

func (s *Service) CreateLiver(ctx context.Context, subjectID uuid.UUID, in LiverInput) (*LiverAssessment, error) {
	if subjectID == uuid.Nil {
		return nil, invalid("subject_id", "is required")
	}
	if err := validateLiver(in); err != nil {
		return nil, err
	}
	score := LiverRiskScore(in)
	a := &LiverAssessment{
		Record:     Record{SubjectID: subjectID},
		LiverInput: in,
		RiskScore:  score,
		RiskLevel:  s.classifier.LiverLevel(score),
	}
	if err := s.liver.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("persist liver assessment: %w", err)
	}
	s.notifyIfHigh(ctx, subjectID, "liver", a.RiskLevel)
	return a, nil
}

// LiverHistory returns stored assessments newest first.
func (s *Service) LiverHistory(ctx context.Context, subjectID uuid.UUID, limit int) ([]*LiverAssessment, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	items, err := s.liver.ListBySubject(ctx, subjectID, limit)
	if err != nil {
		return nil, fmt.Errorf("list liver assessments: %w", err)
	}
	for _, a := range items {
		if a.RiskLevel == "" {
			a.RiskLevel = s.classifier.LiverLevel(a.RiskScore)
		}
	}
	if items == nil {
		items = []*LiverAssessment{}
	}
	return items, nil
}

// -- Stroke --

func validateStroke(in StrokeInput) error {
	for _, a := range in.answers() {
		if a != "" && a != StrokeHigher && a != StrokeLower {
			return invalid("answers", `values must be "higher" or "lower"`)
		}
	}
	return nil
}

func (s *Service) CreateStroke(ctx context.Context, subjectID uuid.UUID, in StrokeInput) (*StrokeAssessment, error) {
	if subjectID == uuid.Nil {
		return nil, invalid("subject_id", "is required")
	}
	if err := validateStroke(in); err != nil {
		return nil, err
	}
	higher, lower, desc := StrokeScores(in)
	a := &StrokeAssessment{
		Record:          Record{SubjectID: subjectID},
		StrokeInput:     in,
		HigherRiskScore: higher,
		LowerRiskScore:  lower,
		Desc:            desc,
	}
	if err := s.stroke.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("persist stroke assessment: %w", err)
	}
	s.notifyIfHigh(ctx, subjectID, "stroke", s.classifier.StrokeLevelBySum(lower, higher))
	return a, nil
}

// StrokeHistory returns the most recent assessments joined with a
// derived risk level and a resolved recommendation. Lookups fan out
// concurrently; recommendation data is read-only reference data.
func (s *Service) StrokeHistory(ctx context.Context, subjectID uuid.UUID, limit int) ([]*StrokeView, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	items, err := s.stroke.ListBySubject(ctx, subjectID, limit)
	if err != nil {
		return nil, fmt.Errorf("list stroke assessments: %w", err)
	}
	if len(items) == 0 {
		return []*StrokeView{}, nil
	}

	views := make([]*StrokeView, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, a := range items {
		i, a := i, a
		g.Go(func() error {
			level := s.classifier.StrokeLevelByMean(a.LowerRiskScore, a.HigherRiskScore)
			view := &StrokeView{StrokeAssessment: *a, RiskLevel: level}
			guidance, err := s.recs.StrokeRecommendation(gctx, level)
			if err != nil {
				return fmt.Errorf("resolve stroke recommendation: %w", err)
			}
			if guidance != nil {
				view.Recommendation = &Recommendation{
					DietAdjustments:      guidance.DietRecommendation,
					MedicalInterventions: guidance.MedicalRecommendation,
					PhysicalActivity:     guidance.PhysicalActivityRecommendation,
				}
			}
			views[i] = view
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

// subjectKey resolves the recommendation lookup key for a subject. Age
// defaults to 45 when the subject or their birth date is unknown.
func (s *Service) subjectKey(ctx context.Context, subjectID uuid.UUID) (ageGroup, gender string) {
	age := defaultSubjectAge
	gender = "M"
	if s.subjects != nil {
		if subj, err := s.subjects.Subject(ctx, subjectID); err == nil && subj != nil {
			if subj.Age > 0 {
				age = subj.Age
			}
			if subj.Gender != "" {
				gender = subj.Gender
			}
		}
	}
	return s.classifier.CoronaryAgeGroup(age), gender
}

// notifyIfHigh pushes a high-risk alert when the classified level reads
// as high. Alert delivery is best-effort and never fails the create.
func (s *Service) notifyIfHigh(ctx context.Context, subjectID uuid.UUID, disease, level string) {
	if s.alerts == nil {
		return
	}
	lower := strings.ToLower(level)
	if strings.Contains(lower, "high") && !strings.Contains(lower, "low") {
		s.alerts.HighRiskAlert(ctx, subjectID, disease, level)
	}
}
