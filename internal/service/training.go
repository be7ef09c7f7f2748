package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Rrens/fitcoach/internal/archive"
	"github.com/Rrens/fitcoach/internal/domain"
	"github.com/Rrens/fitcoach/internal/repository"
	"github.com/Rrens/fitcoach/internal/training"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// TrainingCache caches the current plan view of a user
type TrainingCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.TrainingView, error)
	Set(ctx context.Context, view *domain.TrainingView) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

type nopCache struct{}

func (nopCache) Get(context.Context, uuid.UUID) (*domain.TrainingView, error) { return nil, nil }
func (nopCache) Set(context.Context, *domain.TrainingView) error              { return nil }
func (nopCache) Invalidate(context.Context, uuid.UUID) error                  { return nil }

// GenerateResult is a stored plan plus how it was produced
type GenerateResult struct {
	Training      *domain.Training
	Trace         []training.Stage
	Fallback      bool
	ArchiveKey    string
	ExecutionTime time.Duration
}

// TrainingService generates, stores and serves weekly plans
type TrainingService struct {
	generator *training.Generator
	trainings repository.TrainingRepository
	archiver  archive.Archiver
	cache     TrainingCache
	now       func() time.Time
}

// NewTrainingService creates a new training service. archiver and cache may be nil.
func NewTrainingService(
	generator *training.Generator,
	trainings repository.TrainingRepository,
	archiver archive.Archiver,
	cache TrainingCache,
) *TrainingService {
	if archiver == nil {
		archiver = archive.Nop{}
	}
	if cache == nil {
		cache = nopCache{}
	}
	return &TrainingService{
		generator: generator,
		trainings: trainings,
		archiver:  archiver,
		cache:     cache,
		now:       time.Now,
	}
}

// Generate runs the pipeline for the form and replaces the user's plan.
// A *training.ValidationError is returned unchanged.
func (s *TrainingService) Generate(ctx context.Context, userID uuid.UUID, form training.Form) (*GenerateResult, error) {
	start := s.now()

	res, err := s.generator.Generate(ctx, form)
	if err != nil {
		return nil, err
	}

	logger := log.With().Str("user_id", userID.String()).Str("ai_model", res.Plan.AIModel).Logger()
	if res.Fallback() {
		logger.Warn().Err(res.FallbackReason).Msg("training oracle unavailable, using fallback plan")
	}

	rec := domain.NewTraining(userID, res.Plan, s.now().UTC())
	result := &GenerateResult{
		Trace:    res.Trace,
		Fallback: res.Fallback(),
	}

	if res.Plan.RawText != "" {
		key, err := s.archiver.Put(ctx, archive.Entry{
			UserID:      userID,
			GeneratedAt: res.Plan.GeneratedAt,
			Model:       res.Plan.AIModel,
			Source:      string(res.Plan.Source),
			Text:        res.Plan.RawText,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("failed to archive oracle reply")
		} else {
			result.ArchiveKey = key
		}
	}

	if err := s.trainings.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save training: %w", err)
	}
	result.Training = rec

	view := rec.View()
	if err := s.cache.Set(ctx, &view); err != nil {
		logger.Warn().Err(err).Msg("failed to cache training")
		// the previous plan may still be cached
		if err := s.cache.Invalidate(ctx, userID); err != nil {
			logger.Warn().Err(err).Msg("failed to invalidate cached training")
		}
	}

	result.ExecutionTime = s.now().Sub(start)
	logger.Info().
		Int("days", res.Plan.PopulatedDays()).
		Bool("fallback", result.Fallback).
		Dur("duration", result.ExecutionTime).
		Msg("training generated")

	return result, nil
}

// Current returns the stored plan of the user, or nil when there is none
func (s *TrainingService) Current(ctx context.Context, userID uuid.UUID) (*domain.TrainingView, error) {
	cached, err := s.cache.Get(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("failed to read training cache")
	}
	if cached != nil {
		return cached, nil
	}

	rec, err := s.trainings.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get training: %w", err)
	}
	if rec == nil {
		return nil, nil
	}

	view := rec.View()
	if err := s.cache.Set(ctx, &view); err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("failed to cache training")
	}
	return &view, nil
}

// Validator exposes the bounds in use
func (s *TrainingService) Validator() training.Validator {
	return s.generator.Validator()
}
