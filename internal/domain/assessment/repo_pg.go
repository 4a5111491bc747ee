package assessment

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Coronary Repository ===========

type coronaryRepoPG struct{ pool *pgxpool.Pool }

func NewCoronaryRepoPG(pool *pgxpool.Pool) CoronaryRepository {
	return &coronaryRepoPG{pool: pool}
}

const coronaryCols = `id, subject_id, gender, age, race, systolic_bp, on_hypertension_med,
	diabetes, smoker, total_cholesterol, hdl_cholesterol, risk_percentage, created_at`

func scanCoronary(row pgx.Row) (*CoronaryAssessment, error) {
	var a CoronaryAssessment
	err := row.Scan(&a.ID, &a.SubjectID, &a.Gender, &a.Age, &a.Race, &a.SystolicBP, &a.OnHypertensionMed,
		&a.Diabetes, &a.Smoker, &a.TotalCholesterol, &a.HDLCholesterol, &a.RiskPercentage, &a.CreatedAt)
	return &a, err
}

func (r *coronaryRepoPG) Create(ctx context.Context, a *CoronaryAssessment) error {
	a.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO coronary_assessment (id, subject_id, gender, age, race, systolic_bp,
			on_hypertension_med, diabetes, smoker, total_cholesterol, hdl_cholesterol, risk_percentage)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING created_at`,
		a.ID, a.SubjectID, a.Gender, a.Age, a.Race, a.SystolicBP,
		a.OnHypertensionMed, a.Diabetes, a.Smoker, a.TotalCholesterol, a.HDLCholesterol, a.RiskPercentage,
	).Scan(&a.CreatedAt)
}

func (r *coronaryRepoPG) ListBySubject(ctx context.Context, subjectID uuid.UUID, limit int) ([]*CoronaryAssessment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+coronaryCols+` FROM coronary_assessment
		WHERE subject_id = $1 ORDER BY created_at DESC LIMIT $2`, subjectID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*CoronaryAssessment
	for rows.Next() {
		a, err := scanCoronary(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// =========== Diabetic Repository ===========

type diabeticRepoPG struct{ pool *pgxpool.Pool }

func NewDiabeticRepoPG(pool *pgxpool.Pool) DiabeticRepository {
	return &diabeticRepoPG{pool: pool}
}

const diabeticCols = `id, subject_id, age_score, waist_score, physical_activity_score,
	family_history_score, total_score, risk_level, created_at`

func scanDiabetic(row pgx.Row) (*DiabeticAssessment, error) {
	var a DiabeticAssessment
	var level *string
	err := row.Scan(&a.ID, &a.SubjectID, &a.AgeScore, &a.WaistScore, &a.PhysicalActivityScore,
		&a.FamilyHistoryScore, &a.TotalScore, &level, &a.CreatedAt)
	if level != nil {
		a.RiskLevel = *level
	}
	return &a, err
}

func (r *diabeticRepoPG) Create(ctx context.Context, a *DiabeticAssessment) error {
	a.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO diabetic_assessment (id, subject_id, age_score, waist_score,
			physical_activity_score, family_history_score, total_score, risk_level)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at`,
		a.ID, a.SubjectID, a.AgeScore, a.WaistScore,
		a.PhysicalActivityScore, a.FamilyHistoryScore, a.TotalScore, a.RiskLevel,
	).Scan(&a.CreatedAt)
}

func (r *diabeticRepoPG) ListBySubject(ctx context.Context, subjectID uuid.UUID, limit int) ([]*DiabeticAssessment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+diabeticCols+` FROM diabetic_assessment
		WHERE subject_id = $1 ORDER BY created_at DESC LIMIT $2`, subjectID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*DiabeticAssessment
	for rows.Next() {
		a, err := scanDiabetic(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// =========== Liver Repository ===========

type liverRepoPG struct{ pool *pgxpool.Pool }

func NewLiverRepoPG(pool *pgxpool.Pool) LiverRepository {
	return &liverRepoPG{pool: pool}
}

const liverCols = `id, subject_id, age_bracket, risk_reasons, diabetes, high_blood_pressure,
	exercise, alcohol, regular_meals, frequent_snacks, processed_foods, soda_juices,
	restaurant_food, risk_score, risk_level, created_at`

func scanLiver(row pgx.Row) (*LiverAssessment, error) {
	var a LiverAssessment
	var reasons string
	var level *string
	err := row.Scan(&a.ID, &a.SubjectID, &a.Age, &reasons, &a.Diabetes, &a.HighBloodPressure,
		&a.Exercise, &a.Alcohol, &a.DietaryHabits.RegularMeals, &a.DietaryHabits.FrequentSnacks,
		&a.DietaryHabits.ProcessedFoods, &a.DietaryHabits.SodaJuices,
		&a.DietaryHabits.RestaurantFood, &a.RiskScore, &level, &a.CreatedAt)
	if reasons != "" {
		a.RiskReasons = strings.Split(reasons, "\n")
	}
	if level != nil {
		a.RiskLevel = *level
	}
	return &a, err
}

func (r *liverRepoPG) Create(ctx context.Context, a *LiverAssessment) error {
	a.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO liver_assessment (id, subject_id, age_bracket, risk_reasons, diabetes,
			high_blood_pressure, exercise, alcohol, regular_meals, frequent_snacks,
			processed_foods, soda_juices, restaurant_food, risk_score, risk_level)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING created_at`,
		a.ID, a.SubjectID, a.Age, strings.Join(a.RiskReasons, "\n"), a.Diabetes,
		a.HighBloodPressure, a.Exercise, a.Alcohol, a.DietaryHabits.RegularMeals,
		a.DietaryHabits.FrequentSnacks, a.DietaryHabits.ProcessedFoods,
		a.DietaryHabits.SodaJuices, a.DietaryHabits.RestaurantFood, a.RiskScore, a.RiskLevel,
	).Scan(&a.CreatedAt)
}

func (r *liverRepoPG) ListBySubject(ctx context.Context, subjectID uuid.UUID, limit int) ([]*LiverAssessment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+liverCols+` FROM liver_assessment
		WHERE subject_id = $1 ORDER BY created_at DESC LIMIT $2`, subjectID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*LiverAssessment
	for rows.Next() {
		a, err := scanLiver(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// =========== Stroke Repository ===========

type strokeRepoPG struct{ pool *pgxpool.Pool }

func NewStrokeRepoPG(pool *pgxpool.Pool) StrokeRepository {
	return &strokeRepoPG{pool: pool}
}

const strokeCols = `id, subject_id, blood_pressure, atrial_fibrillation, smoking, cholesterol,
	diabetes, physical_activity, weight, diet, alcohol, family_history,
	higher_risk_score, lower_risk_score, description, created_at`

func scanStroke(row pgx.Row) (*StrokeAssessment, error) {
	var a StrokeAssessment
	err := row.Scan(&a.ID, &a.SubjectID, &a.BloodPressure, &a.AtrialFibrillation, &a.Smoking,
		&a.Cholesterol, &a.Diabetes, &a.PhysicalActivity, &a.Weight, &a.Diet,
		&a.Alcohol, &a.FamilyHistory,
		&a.HigherRiskScore, &a.LowerRiskScore, &a.Desc, &a.CreatedAt)
	return &a, err
}

func (r *strokeRepoPG) Create(ctx context.Context, a *StrokeAssessment) error {
	a.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO stroke_assessment (id, subject_id, blood_pressure, atrial_fibrillation,
			smoking, cholesterol, diabetes, physical_activity, weight, diet, alcohol,
			family_history, higher_risk_score, lower_risk_score, description)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING created_at`,
		a.ID, a.SubjectID, a.BloodPressure, a.AtrialFibrillation,
		a.Smoking, a.Cholesterol, a.Diabetes, a.PhysicalActivity, a.Weight, a.Diet, a.Alcohol,
		a.FamilyHistory, a.HigherRiskScore, a.LowerRiskScore, a.Desc,
	).Scan(&a.CreatedAt)
}

func (r *strokeRepoPG) ListBySubject(ctx context.Context, subjectID uuid.UUID, limit int) ([]*StrokeAssessment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+strokeCols+` FROM stroke_assessment
		WHERE subject_id = $1 ORDER BY created_at DESC LIMIT $2`, subjectID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*StrokeAssessment
	for rows.Next() {
		a, err := scanStroke(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
