package archive_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Rrens/fitcoach/internal/archive"
	"github.com/Rrens/fitcoach/internal/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry() archive.Entry {
	return archive.Entry{
		UserID:      uuid.MustParse("6f1c2a52-7d0e-4a44-9a53-0d7c1f8f1a10"),
		GeneratedAt: time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
		Model:       "llama-3.3-70b-versatile",
		Source:      "oracle",
		Text:        "## DIA 1: Peito\n| Exercício | Séries | Repetições | Descanso |",
	}
}

func TestEntry_Key(t *testing.T) {
	assert.Equal(t, "plans/6f1c2a52-7d0e-4a44-9a53-0d7c1f8f1a10/20250301T093000Z.md", sampleEntry().Key())
}

func TestNop_Put(t *testing.T) {
	key, err := archive.Nop{}.Put(context.Background(), sampleEntry())
	require.NoError(t, err)
	assert.Equal(t, sampleEntry().Key(), key)
}

func TestS3_Put(t *testing.T) {
	var gotMethod, gotPath, gotModel string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotModel = r.Header.Get("X-Amz-Meta-Model")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store, err := archive.NewS3(context.Background(), config.S3Config{
		Endpoint:        srv.URL,
		Region:          "us-east-1",
		Bucket:          "fitcoach-oracle",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
	})
	require.NoError(t, err)

	key, err := store.Put(context.Background(), sampleEntry())
	require.NoError(t, err)

	assert.Equal(t, sampleEntry().Key(), key)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/fitcoach-oracle/"+key, gotPath)
	assert.Equal(t, "llama-3.3-70b-versatile", gotModel)
	assert.Contains(t, string(gotBody), "## DIA 1: Peito")
}
