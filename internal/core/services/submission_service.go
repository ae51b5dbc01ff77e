package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/sya_logistica/internal/core/domain"
	portsrepo "github.com/SscSPs/sya_logistica/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sya_logistica/internal/core/ports/services"
	"github.com/SscSPs/sya_logistica/internal/dto"
	"github.com/google/uuid"
)

// submissionService turns requirement submissions into ledger rows.
type submissionService struct {
	BaseService
	ledgerRepo portsrepo.LedgerWriter
}

// NewSubmissionService creates a new submission service.
func NewSubmissionService(ledgerRepo portsrepo.LedgerWriter) portssvc.SubmissionSvc {
	return &submissionService{
		ledgerRepo: ledgerRepo,
	}
}

var _ portssvc.SubmissionSvc = (*submissionService)(nil)

// Submit coerces every quantity up front, then appends all rows of the submission
// with a single ledger call so they land contiguously or not at all.
func (s *submissionService) Submit(ctx context.Context, req dto.SubmitRequirementsRequest) (*domain.SubmitResult, error) {
	submissionID := uuid.NewString()
	summary := []any{
		slog.String("submission_id", submissionID),
		slog.String("requester", req.Solicitante),
		slog.String("work_order", req.OrdenTrabajo),
		slog.String("client", req.Cliente),
		slog.String("date", req.Fecha),
		slog.Int("item_count", len(req.Productos)),
	}

	submission, err := dto.ToRequirementSubmission(req)
	if err != nil {
		s.LogWarn(ctx, err, "Rejected requirement submission", summary...)
		return nil, err
	}

	rows := submission.Rows()
	if err := s.ledgerRepo.Append(ctx, rows); err != nil {
		s.LogError(ctx, err, "Failed to append requirement submission to ledger", summary...)
		return nil, err
	}

	s.LogInfo(ctx, "Requirement submission appended to ledger", append(summary, slog.Int("rows_written", len(rows)))...)
	return &domain.SubmitResult{
		SubmissionID: submissionID,
		RowsWritten:  len(rows),
	}, nil
}
