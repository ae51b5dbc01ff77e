package services

import (
	"context"

	"github.com/SscSPs/sya_logistica/internal/core/domain"
	"github.com/SscSPs/sya_logistica/internal/dto"
)

// SubmissionSvc defines the write path for requirement submissions
type SubmissionSvc interface {
	// Submit coerces the line items of a request and appends them to the ledger as one batch.
	// A non-numeric quantity fails the whole submission before anything is written.
	Submit(ctx context.Context, req dto.SubmitRequirementsRequest) (*domain.SubmitResult, error)
}

// RetrievalSvc defines the read path for the accumulated ledger
type RetrievalSvc interface {
	// FetchLedger returns the whole ledger as a downloadable document.
	FetchLedger(ctx context.Context) (*domain.LedgerDocument, error)
}

