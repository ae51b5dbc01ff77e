package repositories

import (
	"context"

	"github.com/SscSPs/sya_logistica/internal/core/domain"
)

// CatalogReader defines read operations on the materials catalog
type CatalogReader interface {
	// ListMaterials returns every catalog entry in file order.
	// It returns apperrors.ErrNotFound when the catalog file is absent.
	ListMaterials(ctx context.Context) ([]domain.MaterialCatalogEntry, error)
}
