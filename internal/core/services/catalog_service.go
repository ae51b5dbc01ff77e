package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/sya_logistica/internal/apperrors"
	"github.com/SscSPs/sya_logistica/internal/core/domain"
	portsrepo "github.com/SscSPs/sya_logistica/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sya_logistica/internal/core/ports/services"
)

// catalogService serves the read-only materials catalog.
type catalogService struct {
	BaseService
	catalogRepo portsrepo.CatalogReader
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalogRepo portsrepo.CatalogReader) portssvc.CatalogSvc {
	return &catalogService{
		catalogRepo: catalogRepo,
	}
}

var _ portssvc.CatalogSvc = (*catalogService)(nil)

func (s *catalogService) ListMaterials(ctx context.Context) ([]domain.MaterialCatalogEntry, error) {
	entries, err := s.catalogRepo.ListMaterials(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, err, "Materials catalog not found")
		} else {
			s.LogError(ctx, err, "Failed to read materials catalog")
		}
		return nil, err
	}

	if entries == nil {
		entries = []domain.MaterialCatalogEntry{}
	}
	s.LogDebug(ctx, "Materials catalog read", slog.Int("count", len(entries)))
	return entries, nil
}
