package reportstorage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()

	t.Run(`save and get`, func(t *testing.T) {
		storage, err := NewLocal(t.TempDir())
		require.Nil(t, err)
		reportID := uuid.NewString()

		require.Nil(t, storage.Save(ctx, reportID, "career_plan.pdf", "application/pdf", []byte("%PDF-1.3")))
		data, err := storage.Get(ctx, reportID, "career_plan.pdf")
		require.Nil(t, err)
		require.Equal(t, []byte("%PDF-1.3"), data)

		_, err = storage.Get(ctx, reportID, "report.json")
		require.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run(`reports do not share files`, func(t *testing.T) {
		storage, err := NewLocal(t.TempDir())
		require.Nil(t, err)
		first, second := uuid.NewString(), uuid.NewString()
		require.Nil(t, storage.Save(ctx, first, "career_plan.pdf", "application/pdf", []byte("first")))
		require.Nil(t, storage.Save(ctx, second, "career_plan.pdf", "application/pdf", []byte("second")))

		data, err := storage.Get(ctx, first, "career_plan.pdf")
		require.Nil(t, err)
		require.Equal(t, []byte("first"), data)
	})

	t.Run(`report id must be a uuid`, func(t *testing.T) {
		storage, err := NewLocal(t.TempDir())
		require.Nil(t, err)
		require.True(t, errors.Is(storage.Save(ctx, "../escape", "x", "", []byte("x")), ErrNotFound))
		_, err = storage.Get(ctx, "../escape", "x")
		require.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run(`delete expired`, func(t *testing.T) {
		dir := t.TempDir()
		storage, err := NewLocal(dir)
		require.Nil(t, err)
		oldID, freshID := uuid.NewString(), uuid.NewString()
		require.Nil(t, storage.Save(ctx, oldID, "career_plan.pdf", "application/pdf", []byte("old")))
		require.Nil(t, storage.Save(ctx, freshID, "career_plan.pdf", "application/pdf", []byte("fresh")))
		past := time.Now().Add(-2 * time.Hour)
		require.Nil(t, os.Chtimes(filepath.Join(dir, oldID), past, past))

		deleted, err := storage.DeleteExpired(ctx, time.Now().Add(-time.Hour))
		require.Nil(t, err)
		require.Equal(t, 1, deleted)

		_, err = storage.Get(ctx, oldID, "career_plan.pdf")
		require.True(t, errors.Is(err, ErrNotFound))
		_, err = storage.Get(ctx, freshID, "career_plan.pdf")
		require.Nil(t, err)
	})
}
