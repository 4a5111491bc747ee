package assessment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NormalizeLegacyLevel maps a legacy free-text risk level onto one of
// the canonical Low/Moderate/High/Very High labels by case-insensitive
// substring matching. The second return is false when the text matches
// no label and the caller must recompute from the stored scores.
func NormalizeLegacyLevel(raw string) (string, bool) {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "very high"):
		return LevelVeryHigh, true
	case strings.Contains(lower, "high") && !strings.Contains(lower, "low"):
		return LevelHigh, true
	case strings.Contains(lower, "moderate") || strings.Contains(lower, "medium"):
		return LevelModerate, true
	case strings.Contains(lower, "low"):
		return LevelLow, true
	default:
		return "", false
	}
}

// diabeticAdvisoryFor maps a canonical label onto the advisory sentence
// the diabetic table stores. The diabetic bands have no plain High, so
// High collapses into the very-high advisory.
func diabeticAdvisoryFor(label string) string {
	switch label {
	case LevelVeryHigh, LevelHigh:
		return DiabeticVeryHighAdvisory
	case LevelModerate:
		return DiabeticModerateAdvisory
	default:
		return DiabeticLowAdvisory
	}
}

// liverLevelFor maps a canonical label onto the upper-cased liver
// storage form. Liver has no very-high band.
func liverLevelFor(label string) string {
	switch label {
	case LevelVeryHigh, LevelHigh:
		return LiverLevelHigh
	case LevelModerate:
		return LiverLevelModerate
	default:
		return LiverLevelLow
	}
}

// LevelNormalizer is the offline batch behind the normalize-risk-levels
// subcommand. It rewrites legacy free-text risk levels in the diabetic
// and liver tables to the canonical forms: rows whose text matches a
// label keep their recorded meaning; rows that match nothing are
// reclassified from their stored scores. The read path never depends on
// this job running.
type LevelNormalizer struct {
	pool       *pgxpool.Pool
	classifier Classifier
}

func NewLevelNormalizer(pool *pgxpool.Pool, classifier Classifier) *LevelNormalizer {
	return &LevelNormalizer{pool: pool, classifier: classifier}
}

// Run normalizes both tables and returns the number of rows rewritten.
func (n *LevelNormalizer) Run(ctx context.Context) (int, error) {
	diabetic, err := n.normalizeDiabetic(ctx)
	if err != nil {
		return 0, fmt.Errorf("normalize diabetic levels: %w", err)
	}
	liver, err := n.normalizeLiver(ctx)
	if err != nil {
		return diabetic, fmt.Errorf("normalize liver levels: %w", err)
	}
	return diabetic + liver, nil
}

func (n *LevelNormalizer) normalizeDiabetic(ctx context.Context) (int, error) {
	rows, err := n.pool.Query(ctx, `SELECT id, total_score, COALESCE(risk_level, '') FROM diabetic_assessment`)
	if err != nil {
		return 0, err
	}
	updates, err := n.collectUpdates(rows, func(score int, stored string) string {
		if label, ok := NormalizeLegacyLevel(stored); ok {
			return diabeticAdvisoryFor(label)
		}
		return n.classifier.DiabeticLevel(score)
	})
	if err != nil {
		return 0, err
	}
	return n.applyUpdates(ctx, "diabetic_assessment", updates)
}

func (n *LevelNormalizer) normalizeLiver(ctx context.Context) (int, error) {
	rows, err := n.pool.Query(ctx, `SELECT id, risk_score, COALESCE(risk_level, '') FROM liver_assessment`)
	if err != nil {
		return 0, err
	}
	updates, err := n.collectUpdates(rows, func(score int, stored string) string {
		if label, ok := NormalizeLegacyLevel(stored); ok {
			return liverLevelFor(label)
		}
		return n.classifier.LiverLevel(score)
	})
	if err != nil {
		return 0, err
	}
	return n.applyUpdates(ctx, "liver_assessment", updates)
}

type levelUpdate struct {
	id    uuid.UUID
	level string
}

func (n *LevelNormalizer) collectUpdates(rows pgx.Rows, canonical func(score int, stored string) string) ([]levelUpdate, error) {
	defer rows.Close()
	var updates []levelUpdate
	for rows.Next() {
		var id uuid.UUID
		var score int
		var stored string
		if err := rows.Scan(&id, &score, &stored); err != nil {
			return nil, err
		}
		if want := canonical(score, stored); want != stored {
			updates = append(updates, levelUpdate{id: id, level: want})
		}
	}
	return updates, rows.Err()
}

func (n *LevelNormalizer) applyUpdates(ctx context.Context, table string, updates []levelUpdate) (int, error) {
	for _, u := range updates {
		if _, err := n.pool.Exec(ctx, `UPDATE `+table+` SET risk_level = $1 WHERE id = $2`, u.level, u.id); err != nil {
			return 0, err
		}
	}
	return len(updates), nil
}
