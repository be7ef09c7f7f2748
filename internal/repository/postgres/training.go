package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Rrens/fitcoach/internal/domain"
	"github.com/Rrens/fitcoach/internal/training"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

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
	days := make([][]byte, training.Week)
	for d := 1; d <= training.Week; d++ {
		b, err := json.Marshal(t.Day(d))
		if err != nil {
			return fmt.Errorf("failed to marshal day %d: %w", d, err)
		}
		days[d-1] = b
	}

	prefs, err := json.Marshal(t.Preferences)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	query := `
		INSERT INTO training (
			id, user_id,
			day1_exercises, day2_exercises, day3_exercises, day4_exercises,
			day5_exercises, day6_exercises, day7_exercises,
			dias_semana, current_day, generated_at, ai_model, source,
			user_preferences, imc, warning, raw_text, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (user_id) DO UPDATE SET
			day1_exercises = EXCLUDED.day1_exercises,
			day2_exercises = EXCLUDED.day2_exercises,
			day3_exercises = EXCLUDED.day3_exercises,
			day4_exercises = EXCLUDED.day4_exercises,
			day5_exercises = EXCLUDED.day5_exercises,
			day6_exercises = EXCLUDED.day6_exercises,
			day7_exercises = EXCLUDED.day7_exercises,
			dias_semana = EXCLUDED.dias_semana,
			current_day = EXCLUDED.current_day,
			generated_at = EXCLUDED.generated_at,
			ai_model = EXCLUDED.ai_model,
			source = EXCLUDED.source,
			user_preferences = EXCLUDED.user_preferences,
			imc = EXCLUDED.imc,
			warning = EXCLUDED.warning,
			raw_text = EXCLUDED.raw_text,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`

	err = r.db.Pool.QueryRow(ctx, query,
		t.ID, t.UserID,
		days[0], days[1], days[2], days[3], days[4], days[5], days[6],
		t.DaysPerWeek, t.CurrentDay, t.GeneratedAt, t.AIModel, string(t.Source),
		prefs, t.IMC, t.Warning, t.RawText, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert training: %w", err)
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
			user_preferences, imc::float8, warning, raw_text, created_at, updated_at
		FROM training
		WHERE user_id = $1
	`

	var t domain.Training
	var days [training.Week][]byte
	var prefs []byte
	var source string

	err := r.db.Pool.QueryRow(ctx, query, userID).Scan(
		&t.ID, &t.UserID,
		&days[0], &days[1], &days[2], &days[3], &days[4], &days[5], &days[6],
		&t.DaysPerWeek, &t.CurrentDay, &t.GeneratedAt, &t.AIModel, &source,
		&prefs, &t.IMC, &t.Warning, &t.RawText, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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
