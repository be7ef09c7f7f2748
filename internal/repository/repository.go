// Package repository declares the persistence contracts shared by the
// postgres, sqlstore and mongo backends.
package repository

import (
	"context"

	"github.com/Rrens/fitcoach/internal/domain"
	"github.com/google/uuid"
)

// UserRepository stores accounts. Lookups return (nil, nil) when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// TrainingRepository stores one plan per user. Upsert replaces the previous
// plan and writes back the persisted ID and CreatedAt.
type TrainingRepository interface {
	Upsert(ctx context.Context, t *domain.Training) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Training, error)
}

// Store bundles the repositories of one backend.
type Store struct {
	Driver    string
	Users     UserRepository
	Trainings TrainingRepository
	Ping      func(ctx context.Context) error
	Close     func() error
}
