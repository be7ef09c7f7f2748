package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Rrens/fitcoach/internal/config"
	"github.com/Rrens/fitcoach/internal/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Level(t *testing.T) {
	closer, err := logging.Setup(config.LoggingConfig{Level: "warn"}, true)
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	_, err = logging.Setup(config.LoggingConfig{Level: "nonsense"}, true)
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestSetup_RotatedFile(t *testing.T) {
	dir := t.TempDir()
	closer, err := logging.Setup(config.LoggingConfig{
		Level:  "info",
		Format: "json",
		File:   filepath.Join(dir, "logs", "fitcoach.log"),
	}, true)
	require.NoError(t, err)

	log.Info().Str("component", "test").Msg("plan generated")
	require.NoError(t, closer.Close())

	matches, err := filepath.Glob(filepath.Join(dir, "logs", "fitcoach.*.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"message":"plan generated"`))
}
