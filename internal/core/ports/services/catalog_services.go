package services

import (
	"context"

	"github.com/SscSPs/sya_logistica/internal/core/domain"
)

// CatalogSvc defines read operations on the materials catalog
type CatalogSvc interface {
	// ListMaterials returns the catalog in file order, or apperrors.ErrNotFound if it is missing.
	ListMaterials(ctx context.Context) ([]domain.MaterialCatalogEntry, error)
}
