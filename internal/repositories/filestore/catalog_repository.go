package filestore

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/SscSPs/sya_logistica/internal/apperrors"
	"github.com/SscSPs/sya_logistica/internal/core/domain"
	portsrepo "github.com/SscSPs/sya_logistica/internal/core/ports/repositories"
	"github.com/SscSPs/sya_logistica/internal/models"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CatalogRepository reads the materials catalog from a delimited text file.
// The file is maintained outside this service and is never written here.
type CatalogRepository struct {
	path      string
	encoding  string
	delimiter rune
}

// NewCatalogRepository creates a catalog reader for the file at path.
// encoding is one of utf-8, windows-1252 or iso-8859-1.
func NewCatalogRepository(path, encoding string, delimiter rune) (*CatalogRepository, error) {
	if _, err := decoderFor(encoding); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path %s: %w", path, err)
	}
	return &CatalogRepository{
		path:      abs,
		encoding:  encoding,
		delimiter: delimiter,
	}, nil
}

// Ensure implementation matches interface
var _ portsrepo.CatalogReader = (*CatalogRepository)(nil)

// ListMaterials returns every catalog entry in file order.
func (r *CatalogRepository) ListMaterials(ctx context.Context) ([]domain.MaterialCatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("materials catalog %s: %w", r.path, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("open materials catalog %s: %w: %w", r.path, apperrors.ErrStorage, err)
	}
	defer file.Close()

	decoder, _ := decoderFor(r.encoding)
	content, err := io.ReadAll(transform.NewReader(file, decoder))
	if err != nil {
		return nil, fmt.Errorf("read materials catalog %s: %w: %w", r.path, apperrors.ErrStorage, err)
	}

	// A catalog holding only its header means no materials are configured yet.
	if countLines(content) < 2 {
		return []domain.MaterialCatalogEntry{}, nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(content),
		dataframe.WithDelimiter(r.delimiter),
		dataframe.WithLazyQuotes(true),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("parse materials catalog %s: %w: %w", r.path, apperrors.ErrStorage, df.Err)
	}

	selected := df.Select(models.CatalogColumns)
	if selected.Err != nil {
		return nil, fmt.Errorf("materials catalog %s must have columns %v: %w: %w", r.path, models.CatalogColumns, apperrors.ErrStorage, selected.Err)
	}

	names := selected.Col(models.CatalogColumnMaterial).Records()
	units := selected.Col(models.CatalogColumnUnit).Records()

	entries := make([]domain.MaterialCatalogEntry, 0, len(names))
	for i := range names {
		entries = append(entries, domain.MaterialCatalogEntry{
			Name: strings.TrimSpace(names[i]),
			Unit: strings.TrimSpace(units[i]),
		})
	}
	return entries, nil
}

// decoderFor returns the transformer converting catalog bytes in the given encoding to UTF-8.
func decoderFor(encoding string) (transform.Transformer, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		// Spreadsheet tools prepend a BOM to UTF-8 exports.
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported catalog encoding %q", encoding)
	}
}

// countLines counts non-blank lines.
func countLines(content []byte) int {
	n := 0
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), len(content)+1)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			n++
		}
	}
	return n
}
