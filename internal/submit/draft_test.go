package submit

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDraftStore(t *testing.T) *DraftStore {
	t.Helper()
	store, err := NewDraftStore(filepath.Join(t.TempDir(), "drafts.db"), nil)
	require.NoError(t, err)
	return store
}

func TestDraftStore_SaveAndLoad(t *testing.T) {
	store := newTestDraftStore(t)

	form := validForm()
	form.Title = "Borrador sin terminar"
	require.NoError(t, store.Save("maikel@nicaris.com", form, []string{"aW1n"}))

	loaded, images, savedAt, err := store.Load("maikel@nicaris.com")
	require.NoError(t, err)
	assert.Equal(t, "Borrador sin terminar", loaded.Title)
	assert.Equal(t, []string{"aW1n"}, images)
	assert.WithinDuration(t, time.Now().UTC(), savedAt, time.Minute)
}

func TestDraftStore_SaveReplacesPrevious(t *testing.T) {
	store := newTestDraftStore(t)

	first := validForm()
	first.Title = "Primer borrador"
	require.NoError(t, store.Save("maikel@nicaris.com", first, nil))

	second := validForm()
	second.Title = "Segundo borrador"
	require.NoError(t, store.Save("maikel@nicaris.com", second, nil))

	loaded, _, _, err := store.Load("maikel@nicaris.com")
	require.NoError(t, err)
	assert.Equal(t, "Segundo borrador", loaded.Title)
}

func TestDraftStore_LoadMissing(t *testing.T) {
	store := newTestDraftStore(t)

	_, _, _, err := store.Load("nadie@nicaris.com")
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestDraftStore_DraftsArePerOwner(t *testing.T) {
	store := newTestDraftStore(t)

	mine := validForm()
	mine.Title = "Borrador de Maikel"
	require.NoError(t, store.Save("maikel@nicaris.com", mine, nil))

	_, _, _, err := store.Load("marlon@nicaris.com")
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestDraftStore_Clear(t *testing.T) {
	store := newTestDraftStore(t)

	require.NoError(t, store.Save("maikel@nicaris.com", validForm(), nil))
	require.NoError(t, store.Clear("maikel@nicaris.com"))

	_, _, _, err := store.Load("maikel@nicaris.com")
	assert.ErrorIs(t, err, ErrNoDraft)

	// Clearing an already-empty slot is fine.
	require.NoError(t, store.Clear("maikel@nicaris.com"))
}

func TestDraftStore_PurgeOlderThan(t *testing.T) {
	store := newTestDraftStore(t)

	require.NoError(t, store.Save("viejo@nicaris.com", validForm(), nil))
	require.NoError(t, store.Save("nuevo@nicaris.com", validForm(), nil))

	// Age the first draft past the TTL directly in the table.
	stale := time.Now().UTC().Add(-72 * time.Hour)
	require.NoError(t, store.db.Model(&Draft{}).
		Where("owner_email = ?", "viejo@nicaris.com").
		Update("saved_at", stale).Error)

	purged, err := store.PurgeOlderThan(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	_, _, _, err = store.Load("viejo@nicaris.com")
	assert.ErrorIs(t, err, ErrNoDraft)
	_, _, _, err = store.Load("nuevo@nicaris.com")
	assert.NoError(t, err)
}
