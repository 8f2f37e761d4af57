package documents

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nicaris/backoffice/internal/models"
)

func newSeededStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "documents.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Seed(DefaultDocuments()))
	return store
}

func names(docs []models.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Name)
	}
	return out
}

func TestList_RoleScoping(t *testing.T) {
	store := newSeededStore(t)

	captador, err := store.List(models.RoleCaptador, "", "all")
	require.NoError(t, err)
	for _, d := range captador {
		assert.Equal(t, AccessAll, d.AccessLevel)
	}

	manager, err := store.List(models.RoleManager, "", "all")
	require.NoError(t, err)
	assert.Greater(t, len(manager), len(captador))
	for _, d := range manager {
		assert.NotEqual(t, AccessAdmin, d.AccessLevel)
	}

	admin, err := store.List(models.RoleAdmin, "", "all")
	require.NoError(t, err)
	assert.Len(t, admin, len(DefaultDocuments()))
}

func TestList_UnknownRoleSeesPublicOnly(t *testing.T) {
	store := newSeededStore(t)

	docs, err := store.List("Vendedor", "", "all")
	require.NoError(t, err)
	require.NotEmpty(t, docs)
	for _, d := range docs {
		assert.Equal(t, AccessAll, d.AccessLevel)
	}
}

func TestList_SearchIsCaseInsensitive(t *testing.T) {
	store := newSeededStore(t)

	docs, err := store.List(models.RoleAdmin, "CONTRATO", "all")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Contains(t, names(docs), "Contrato de compraventa (plantilla)")
}

func TestList_CategoryFilter(t *testing.T) {
	store := newSeededStore(t)

	docs, err := store.List(models.RoleAdmin, "", "Finanzas")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	for _, d := range docs {
		assert.Equal(t, "Finanzas", d.Category)
	}
}

func TestList_SearchAndCategoryCombine(t *testing.T) {
	store := newSeededStore(t)

	docs, err := store.List(models.RoleAdmin, "reporte", "Finanzas")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Reporte trimestral de ventas", docs[0].Name)
}

func TestList_NewestFirst(t *testing.T) {
	store := newSeededStore(t)

	docs, err := store.List(models.RoleAdmin, "", "all")
	require.NoError(t, err)
	for i := 1; i < len(docs); i++ {
		assert.False(t, docs[i].UploadedAt.After(docs[i-1].UploadedAt))
	}
}

func TestSeed_IsIdempotent(t *testing.T) {
	store := newSeededStore(t)
	require.NoError(t, store.Seed(DefaultDocuments()))

	docs, err := store.List(models.RoleAdmin, "", "all")
	require.NoError(t, err)
	assert.Len(t, docs, len(DefaultDocuments()))
}

func TestCategories(t *testing.T) {
	store := newSeededStore(t)

	categories, err := store.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Administración", "Contratos", "Finanzas", "Guías"}, categories)
}
