package filestore

import (
	portsrepo "github.com/SscSPs/sya_logistica/internal/core/ports/repositories"
	"github.com/SscSPs/sya_logistica/internal/platform/config"
)

// NewRepositoryProvider builds the file-backed repositories described by cfg.
func NewRepositoryProvider(cfg *config.Config) (portsrepo.RepositoryProvider, error) {
	ledgerRepo, err := NewLedgerRepository(cfg.LedgerPath, cfg.LedgerSheet, cfg.LedgerLockTimeout)
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	catalogRepo, err := NewCatalogRepository(cfg.CatalogPath, cfg.CatalogEncoding, cfg.CatalogDelimiter)
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}

	return portsrepo.RepositoryProvider{
		LedgerRepo:  ledgerRepo,
		CatalogRepo: catalogRepo,
	}, nil
}
