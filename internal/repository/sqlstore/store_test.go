package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/Rrens/fitcoach/internal/domain"
	"github.com/Rrens/fitcoach/internal/repository/sqlstore"
	"github.com/Rrens/fitcoach/internal/training"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *sqlstore.DB {
	t.Helper()
	db, err := sqlstore.Open(context.Background(), sqlstore.SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func createUser(t *testing.T, users *sqlstore.UserRepository, email string) *domain.User {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "hash",
		FullName:     "Ana Souza",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)
	users := sqlstore.NewUserRepository(db)

	user := createUser(t, users, "Ana@Example.com")

	exists, err := users.EmailExists(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = users.EmailExists(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	got, err := users.GetByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "ana@example.com", got.Email)
	assert.Nil(t, got.LastLogin)

	require.NoError(t, users.UpdateLastLogin(ctx, user.ID))
	got, err = users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)

	missing, err := users.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	dup := &domain.User{ID: uuid.New(), Email: "ana@example.com", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	assert.Error(t, users.Create(ctx, dup))
}

func fallbackPlan(days int, now time.Time) *training.Plan {
	return training.Fallback(training.Profile{
		Height: 170, Weight: 65, Experience: training.Intermediate, Sex: training.Female,
		Location: training.Home, DaysPerWeek: days, Goal: training.FatLoss, DailyMinutes: 30,
	}, now)
}

func TestTrainingRepository_UpsertKeepsOneRowPerUser(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)
	users := sqlstore.NewUserRepository(db)
	trainings := sqlstore.NewTrainingRepository(db)

	user := createUser(t, users, "ana@example.com")

	none, err := trainings.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, none)

	now := time.Now().UTC().Truncate(time.Second)
	first := domain.NewTraining(user.ID, fallbackPlan(3, now), now)
	require.NoError(t, trainings.Upsert(ctx, first))
	firstID := first.ID

	later := now.Add(time.Hour)
	second := domain.NewTraining(user.ID, fallbackPlan(5, later), later)
	require.NoError(t, trainings.Upsert(ctx, second))

	assert.Equal(t, firstID, second.ID)

	got, err := trainings.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, firstID, got.ID)
	assert.Equal(t, 5, got.DaysPerWeek)
	assert.Equal(t, 1, got.CurrentDay)
	assert.Equal(t, training.SourceFallback, got.Source)
	assert.Equal(t, training.FallbackWarning, got.Warning)
	assert.Equal(t, training.Home, got.Preferences.Local)
	assert.Len(t, got.Day(5), 6)
	assert.Empty(t, got.Day(6))
	assert.Equal(t, second.Day(1), got.Day(1))
	assert.True(t, got.GeneratedAt.Equal(later))

	rows, err := sqlstore.CountTrainings(db)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)
}

func TestDialectFor(t *testing.T) {
	d, err := sqlstore.DialectFor("SQLite")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name)

	d, err = sqlstore.DialectFor("mariadb")
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name)

	_, err = sqlstore.DialectFor("oracle")
	assert.Error(t, err)
}
