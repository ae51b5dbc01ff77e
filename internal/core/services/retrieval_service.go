package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/sya_logistica/internal/core/domain"
	portsrepo "github.com/SscSPs/sya_logistica/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sya_logistica/internal/core/ports/services"
)

// retrievalService serves ledger snapshots for download.
type retrievalService struct {
	BaseService
	ledgerRepo portsrepo.LedgerReader
}

// NewRetrievalService creates a new retrieval service.
func NewRetrievalService(ledgerRepo portsrepo.LedgerReader) portssvc.RetrievalSvc {
	return &retrievalService{
		ledgerRepo: ledgerRepo,
	}
}

var _ portssvc.RetrievalSvc = (*retrievalService)(nil)

func (s *retrievalService) FetchLedger(ctx context.Context) (*domain.LedgerDocument, error) {
	doc, err := s.ledgerRepo.Snapshot(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot ledger")
		return nil, err
	}

	s.LogDebug(ctx, "Ledger snapshot taken",
		slog.Int("size_bytes", len(doc.Content)),
		slog.Time("modified_at", doc.ModifiedAt))
	return doc, nil
}
