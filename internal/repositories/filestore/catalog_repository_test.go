package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/sya_logistica/internal/apperrors"
	"github.com/SscSPs/sya_logistica/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func writeCatalog(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logistica_materiales.csv")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestListMaterials_PreservesFileOrder(t *testing.T) {
	path := writeCatalog(t, []byte("material,unidad\nCable,m\nTubo PVC,u\nArena,m3\n"))
	repo, err := NewCatalogRepository(path, "utf-8", ',')
	require.NoError(t, err)

	entries, err := repo.ListMaterials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.MaterialCatalogEntry{
		{Name: "Cable", Unit: "m"},
		{Name: "Tubo PVC", Unit: "u"},
		{Name: "Arena", Unit: "m3"},
	}, entries)
}

func TestListMaterials_IgnoresExtraColumnsAndOrder(t *testing.T) {
	path := writeCatalog(t, []byte("codigo,unidad,material\n001,kg,Clavos\n002,u,Martillo\n"))
	repo, err := NewCatalogRepository(path, "utf-8", ',')
	require.NoError(t, err)

	entries, err := repo.ListMaterials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.MaterialCatalogEntry{
		{Name: "Clavos", Unit: "kg"},
		{Name: "Martillo", Unit: "u"},
	}, entries)
}

func TestListMaterials_KeepsNumericLookingValuesAsText(t *testing.T) {
	path := writeCatalog(t, []byte("material,unidad\n0012,01\n"))
	repo, err := NewCatalogRepository(path, "utf-8", ',')
	require.NoError(t, err)

	entries, err := repo.ListMaterials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.MaterialCatalogEntry{{Name: "0012", Unit: "01"}}, entries)
}

func TestListMaterials_StripsUTF8ByteOrderMark(t *testing.T) {
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("material,unidad\nCable,m\n")...)
	repo, err := NewCatalogRepository(writeCatalog(t, content), "utf-8", ',')
	require.NoError(t, err)

	entries, err := repo.ListMaterials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.MaterialCatalogEntry{{Name: "Cable", Unit: "m"}}, entries)
}

func TestListMaterials_DecodesWindows1252WithSemicolons(t *testing.T) {
	encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte("material;unidad\nTubería;m\nCañería;u\n"))
	require.NoError(t, err)
	repo, err := NewCatalogRepository(writeCatalog(t, encoded), "windows-1252", ';')
	require.NoError(t, err)

	entries, err := repo.ListMaterials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.MaterialCatalogEntry{
		{Name: "Tubería", Unit: "m"},
		{Name: "Cañería", Unit: "u"},
	}, entries)
}

func TestListMaterials_HeaderOnlyCatalogIsEmpty(t *testing.T) {
	repo, err := NewCatalogRepository(writeCatalog(t, []byte("material,unidad\n")), "utf-8", ',')
	require.NoError(t, err)

	entries, err := repo.ListMaterials(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestListMaterials_MissingFileIsNotFound(t *testing.T) {
	repo, err := NewCatalogRepository(filepath.Join(t.TempDir(), "absent.csv"), "utf-8", ',')
	require.NoError(t, err)

	entries, err := repo.ListMaterials(context.Background())
	assert.Nil(t, entries)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrStorage)
}

func TestListMaterials_MissingColumnsIsStorageError(t *testing.T) {
	repo, err := NewCatalogRepository(writeCatalog(t, []byte("nombre,medida\nCable,m\n")), "utf-8", ',')
	require.NoError(t, err)

	entries, err := repo.ListMaterials(context.Background())
	assert.Nil(t, entries)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListMaterials_UnreadablePathIsStorageError(t *testing.T) {
	// A directory where the file should be cannot be read as a catalog.
	dir := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.Mkdir(dir, 0o755))
	repo, err := NewCatalogRepository(dir, "utf-8", ',')
	require.NoError(t, err)

	_, err = repo.ListMaterials(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrStorage)
}

func TestListMaterials_CanceledContext(t *testing.T) {
	repo, err := NewCatalogRepository(writeCatalog(t, []byte("material,unidad\nCable,m\n")), "utf-8", ',')
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = repo.ListMaterials(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewCatalogRepository_RejectsUnknownEncoding(t *testing.T) {
	_, err := NewCatalogRepository("materiales.csv", "ebcdic", ',')
	assert.Error(t, err)
}

func TestNewCatalogRepository_AcceptsConfiguredEncodings(t *testing.T) {
	for _, encoding := range []string{"utf-8", "utf8", "windows-1252", "cp1252", "iso-8859-1", "latin1"} {
		_, err := NewCatalogRepository("materiales.csv", encoding, ',')
		assert.NoError(t, err, encoding)
	}
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 0, countLines(nil))
	assert.Equal(t, 1, countLines([]byte("material,unidad")))
	assert.Equal(t, 2, countLines([]byte("material,unidad\r\nCable,m\r\n\r\n")))
	assert.Equal(t, 1, countLines([]byte("material,unidad\n   \n\n")))
}
