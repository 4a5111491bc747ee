package recommendation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Coronary Recommendation Repository ===========

type coronaryRepoPG struct{ pool *pgxpool.Pool }

func NewCoronaryRepoPG(pool *pgxpool.Pool) CoronaryRepository {
	return &coronaryRepoPG{pool: pool}
}

const coronaryCols = `id, age_group, gender, risk_level, diet_adjustments,
	physical_activity, medical_interventions, created_at, updated_at`

func scanCoronary(row pgx.Row) (*CoronaryRecommendation, error) {
	var r CoronaryRecommendation
	err := row.Scan(&r.ID, &r.AgeGroup, &r.Gender, &r.RiskLevel, &r.DietAdjustments,
		&r.PhysicalActivity, &r.MedicalInterventions, &r.CreatedAt, &r.UpdatedAt)
	return &r, err
}

func (repo *coronaryRepoPG) Upsert(ctx context.Context, rec *CoronaryRecommendation) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	return repo.pool.QueryRow(ctx, `
		INSERT INTO coronary_recommendation (id, age_group, gender, risk_level,
			diet_adjustments, physical_activity, medical_interventions)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (age_group, gender, risk_level) DO UPDATE SET
			diet_adjustments = EXCLUDED.diet_adjustments,
			physical_activity = EXCLUDED.physical_activity,
			medical_interventions = EXCLUDED.medical_interventions,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`,
		rec.ID, rec.AgeGroup, rec.Gender, rec.RiskLevel,
		rec.DietAdjustments, rec.PhysicalActivity, rec.MedicalInterventions,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

func (repo *coronaryRepoPG) GetByKey(ctx context.Context, ageGroup, gender, riskLevel string) (*CoronaryRecommendation, error) {
	row := repo.pool.QueryRow(ctx, `SELECT `+coronaryCols+` FROM coronary_recommendation
		WHERE age_group = $1 AND gender = $2 AND risk_level = $3`, ageGroup, gender, riskLevel)
	rec, err := scanCoronary(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (repo *coronaryRepoPG) List(ctx context.Context, limit, offset int) ([]*CoronaryRecommendation, int, error) {
	var total int
	if err := repo.pool.QueryRow(ctx, `SELECT COUNT(*) FROM coronary_recommendation`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := repo.pool.Query(ctx, `SELECT `+coronaryCols+` FROM coronary_recommendation
		ORDER BY age_group, gender, risk_level LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*CoronaryRecommendation
	for rows.Next() {
		rec, err := scanCoronary(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rec)
	}
	return items, total, rows.Err()
}

func (repo *coronaryRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := repo.pool.Exec(ctx, `DELETE FROM coronary_recommendation WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// =========== Stroke Recommendation Repository ===========

type strokeRepoPG struct{ pool *pgxpool.Pool }

func NewStrokeRepoPG(pool *pgxpool.Pool) StrokeRepository {
	return &strokeRepoPG{pool: pool}
}

const strokeCols = `id, risk_level, diet_recommendation, medical_recommendation,
	physical_activity_recommendation, created_at, updated_at`

func scanStroke(row pgx.Row) (*StrokeRecommendation, error) {
	var r StrokeRecommendation
	err := row.Scan(&r.ID, &r.RiskLevel, &r.DietRecommendation, &r.MedicalRecommendation,
		&r.PhysicalActivityRecommendation, &r.CreatedAt, &r.UpdatedAt)
	return &r, err
}

func (repo *strokeRepoPG) Upsert(ctx context.Context, rec *StrokeRecommendation) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	return repo.pool.QueryRow(ctx, `
		INSERT INTO stroke_recommendation (id, risk_level, diet_recommendation,
			medical_recommendation, physical_activity_recommendation)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (risk_level) DO UPDATE SET
			diet_recommendation = EXCLUDED.diet_recommendation,
			medical_recommendation = EXCLUDED.medical_recommendation,
			physical_activity_recommendation = EXCLUDED.physical_activity_recommendation,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`,
		rec.ID, rec.RiskLevel, rec.DietRecommendation,
		rec.MedicalRecommendation, rec.PhysicalActivityRecommendation,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

func (repo *strokeRepoPG) GetByLevel(ctx context.Context, riskLevel string) (*StrokeRecommendation, error) {
	row := repo.pool.QueryRow(ctx, `SELECT `+strokeCols+` FROM stroke_recommendation
		WHERE risk_level = $1`, riskLevel)
	rec, err := scanStroke(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (repo *strokeRepoPG) List(ctx context.Context, limit, offset int) ([]*StrokeRecommendation, int, error) {
	var total int
	if err := repo.pool.QueryRow(ctx, `SELECT COUNT(*) FROM stroke_recommendation`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := repo.pool.Query(ctx, `SELECT `+strokeCols+` FROM stroke_recommendation
		ORDER BY risk_level LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*StrokeRecommendation
	for rows.Next() {
		rec, err := scanStroke(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rec)
	}
	return items, total, rows.Err()
}

func (repo *strokeRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := repo.pool.Exec(ctx, `DELETE FROM stroke_recommendation WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
