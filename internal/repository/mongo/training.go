package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rrens/fitcoach/internal/domain"
	"github.com/Rrens/fitcoach/internal/training"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type trainingDocument struct {
	ID          string               `bson:"_id"`
	UserID      string               `bson:"user_id"`
	Day1        []training.Exercise  `bson:"day1_exercises"`
	Day2        []training.Exercise  `bson:"day2_exercises"`
	Day3        []training.Exercise  `bson:"day3_exercises"`
	Day4        []training.Exercise  `bson:"day4_exercises"`
	Day5        []training.Exercise  `bson:"day5_exercises"`
	Day6        []training.Exercise  `bson:"day6_exercises"`
	Day7        []training.Exercise  `bson:"day7_exercises"`
	DaysPerWeek int                  `bson:"dias_semana"`
	CurrentDay  int                  `bson:"current_day"`
	GeneratedAt time.Time            `bson:"generated_at"`
	AIModel     string               `bson:"ai_model"`
	Source      string               `bson:"source"`
	Preferences training.Preferences `bson:"user_preferences"`
	IMC         float64              `bson:"imc"`
	Warning     string               `bson:"warning"`
	RawText     string               `bson:"raw_text"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

func (d *trainingDocument) days() []*[]training.Exercise {
	return []*[]training.Exercise{&d.Day1, &d.Day2, &d.Day3, &d.Day4, &d.Day5, &d.Day6, &d.Day7}
}

// TrainingRepository implements repository.TrainingRepository on MongoDB
type TrainingRepository struct {
	collection *mongo.Collection
}

// NewTrainingRepository creates a training repository backed by MongoDB
func NewTrainingRepository(db *DB) *TrainingRepository {
	return &TrainingRepository{collection: db.database.Collection(trainingCollectionName)}
}

// Upsert stores the plan, replacing any previous plan of the same user
func (r *TrainingRepository) Upsert(ctx context.Context, t *domain.Training) error {
	set := bson.M{
		"dias_semana":      t.DaysPerWeek,
		"current_day":      t.CurrentDay,
		"generated_at":     t.GeneratedAt.UTC(),
		"ai_model":         t.AIModel,
		"source":           string(t.Source),
		"user_preferences": t.Preferences,
		"imc":              t.IMC,
		"warning":          t.Warning,
		"raw_text":         t.RawText,
		"updated_at":       t.UpdatedAt.UTC(),
	}
	for d := 1; d <= training.Week; d++ {
		set[domain.DayColumn(d)] = t.Day(d)
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":        t.ID.String(),
			"created_at": t.CreatedAt.UTC(),
		},
	}

	filter := bson.M{"user_id": t.UserID.String()}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc trainingDocument
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return fmt.Errorf("failed to upsert training: %w", err)
	}

	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return fmt.Errorf("invalid training id %q: %w", doc.ID, err)
	}
	t.ID = id
	t.CreatedAt = doc.CreatedAt
	return nil
}

// GetByUserID retrieves the current plan of a user
func (r *TrainingRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Training, error) {
	var doc trainingDocument
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get training: %w", err)
	}

	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid training id %q: %w", doc.ID, err)
	}

	t := &domain.Training{
		ID:          id,
		UserID:      userID,
		DaysPerWeek: doc.DaysPerWeek,
		CurrentDay:  doc.CurrentDay,
		GeneratedAt: doc.GeneratedAt,
		AIModel:     doc.AIModel,
		Source:      training.Source(doc.Source),
		Preferences: doc.Preferences,
		IMC:         doc.IMC,
		Warning:     doc.Warning,
		RawText:     doc.RawText,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
	for i, day := range doc.days() {
		t.Days[i] = *day
	}
	return t, nil
}
