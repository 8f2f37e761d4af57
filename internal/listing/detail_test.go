package listing

import (
	"context"
	"errors"
	"testing"

	"nicaris/backoffice/internal/sheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(src sheet.Source) *Resolver {
	dec := sheet.NewDecoder(sheet.PropertyColumns, testMedia, nil)
	return NewResolver(src, dec, nil)
}

func TestResolver_FindsRecordByID(t *testing.T) {
	r := newTestResolver(&stubSource{rows: testRows()})

	prop, err := r.Resolve(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Local comercial", prop.Title)
}

func TestResolver_TrimsTargetAndRowID(t *testing.T) {
	rows := testRows()
	rows[0][0] = " 1 "
	r := newTestResolver(&stubSource{rows: rows})

	prop, err := r.Resolve(context.Background(), " 1 ")
	require.NoError(t, err)
	assert.Equal(t, "Apartamento céntrico", prop.Title)
}

func TestResolver_NotFound(t *testing.T) {
	r := newTestResolver(&stubSource{rows: testRows()})

	prop, err := r.Resolve(context.Background(), "999")
	assert.Nil(t, prop)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolver_EmptyID(t *testing.T) {
	src := &stubSource{rows: testRows()}
	r := newTestResolver(src)

	_, err := r.Resolve(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, src.calls, "an empty id needs no fetch")
}

func TestResolver_FetchFailure(t *testing.T) {
	r := newTestResolver(&stubSource{err: errors.New("timeout")})

	prop, err := r.Resolve(context.Background(), "1")
	assert.Nil(t, prop)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
