package repository_test

import (
	"context"
	"testing"

	"github.com/Rrens/fitcoach/internal/config"
	"github.com/Rrens/fitcoach/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "sqlite", DSN: ":memory:"}}

	store, err := repository.Open(context.Background(), cfg)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, "sqlite", store.Driver)
	assert.NotNil(t, store.Users)
	assert.NotNil(t, store.Trainings)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "cassandra"}}

	_, err := repository.Open(context.Background(), cfg)
	assert.Error(t, err)
}
