package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Rrens/fitcoach/internal/domain"
	"github.com/Rrens/fitcoach/internal/training"
	"github.com/google/uuid"
)

// updatable columns on upsert; id, user_id and created_at stay
var trainingUpdateColumns = []string{
	"day1_exercises", "day2_exercises", "day3_exercises", "day4_exercises",
	"day5_exercises", "day6_exercises", "day7_exercises",
	"dias_semana", "current_day", "generated_at", "ai_model", "source",
	"user_preferences", "imc", "warning", "raw_text", "updated_at",
}

// TrainingRepository handles training plan data access
type TrainingRepository struct {
	db *DB
}

// NewTrainingRepository creates a new training repository
func NewTrainingRepository(db *DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

// Upsert stores the plan, replacing any previous plan of the same user
func (r *TrainingRepository) Upsert(ctx context.Context, t *domain.Training) error {
	args := []any{t.ID.String(), t.UserID.String()}
	for d := 1; d <= training.Week; d++ {
		b, err := json.Marshal(t.Day(d))
		if err != nil {
			return fmt.Errorf("failed to marshal day %d: %w", d, err)
		}
		args = append(args, string(b))
	}

	prefs, err := json.Marshal(t.Preferences)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	args = append(args,
		t.DaysPerWeek, t.CurrentDay, t.GeneratedAt.UTC(), t.AIModel, string(t.Source),
		string(prefs), t.IMC, t.Warning, t.RawText, t.CreatedAt.UTC(), t.UpdatedAt.UTC(),
	)

	query := `
		INSERT INTO training (
			id, user_id,
			day1_exercises, day2_exercises, day3_exercises, day4_exercises,
			day5_exercises, day6_exercises, day7_exercises,
			dias_semana, current_day, generated_at, ai_model, source,
			user_preferences, imc, warning, raw_text, created_at, updated_at
		)
		VALUES (` + strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ") + `)
		` + r.db.dialect.upsert(trainingUpdateColumns)

	tx, err := r.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert training: %w", err)
	}

	err = tx.QueryRowContext(ctx,
		"SELECT id, created_at FROM training WHERE user_id = ?",
		t.UserID.String(),
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to read back training: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit training: %w", err)
	}
	return nil
}

// GetByUserID retrieves the current plan of a user
func (r *TrainingRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Training, error) {
	query := `
		SELECT id, user_id,
			day1_exercises, day2_exercises, day3_exercises, day4_exercises,
			day5_exercises, day6_exercises, day7_exercises,
			dias_semana, current_day, generated_at, ai_model, source,
			user_preferences, imc, warning, raw_text, created_at, updated_at
		FROM training
		WHERE user_id = ?`

	var t domain.Training
	var days [training.Week][]byte
	var prefs []byte
	var source string

	err := r.db.conn.QueryRowContext(ctx, query, userID.String()).Scan(
		&t.ID, &t.UserID,
		&days[0], &days[1], &days[2], &days[3], &days[4], &days[5], &days[6],
		&t.DaysPerWeek, &t.CurrentDay, &t.GeneratedAt, &t.AIModel, &source,
		&prefs, &t.IMC, &t.Warning, &t.RawText, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get training: %w", err)
	}
	t.Source = training.Source(source)

	for i, raw := range days {
		if err := json.Unmarshal(raw, &t.Days[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", domain.DayColumn(i+1), err)
		}
	}
	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &t.Preferences); err != nil {
			return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
		}
	}

	return &t, nil
}
