package history

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/horizonedu/starbot/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestLogAndRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for i, q := range []string{"first", "second", "third"} {
		require.NoError(t, store.Log(ctx, Entry{
			AskedAt:  base.Add(time.Duration(i) * time.Minute),
			Question: q,
			Answer:   "answer to " + q,
			Mode:     "mock",
		}))
	}

	entries, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "third", entries[0].Question, "newest entry first")
	require.Equal(t, "second", entries[1].Question)
	require.NotEmpty(t, entries[0].ID, "missing IDs are generated")
}

func TestLogPreservesFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	asked := time.Date(2026, 8, 15, 12, 30, 0, 0, time.UTC)
	require.NoError(t, store.Log(ctx, Entry{
		ID:         "fixed-id",
		AskedAt:    asked,
		Question:   "Where is the library?",
		Answer:     "On the first floor.",
		Mode:       "openai",
		HasImages:  true,
		DurationMS: 42,
		Client:     "web",
	}))

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	require.Equal(t, "fixed-id", e.ID)
	require.True(t, asked.Equal(e.AskedAt))
	require.Equal(t, "openai", e.Mode)
	require.True(t, e.HasImages)
	require.Equal(t, int64(42), e.DurationMS)
	require.Equal(t, "web", e.Client)
}

func TestCount(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	n, err := store.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	require.NoError(t, store.Log(ctx, Entry{Question: "q", Answer: "a", Mode: "mock"}))
	n, err = store.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestHistoryEndpoint(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Log(context.Background(), Entry{
		Question: "What programs are offered?",
		Answer:   "Mathematics and science.",
		Mode:     "mock",
	}))

	router := chi.NewRouter()
	RegisterRoutes(router, store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/history?limit=5", nil))
	require.Equal(t, 200, rec.Code)

	var entries []Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	require.Equal(t, "What programs are offered?", entries[0].Question)
}

func TestHistoryEndpointEmptyLog(t *testing.T) {
	router := chi.NewRouter()
	RegisterRoutes(router, newTestStore(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/history", nil))
	require.Equal(t, 200, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String(), "empty log serializes as an empty array")
}
