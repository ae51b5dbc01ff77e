package repositories

import (
	"context"

	"github.com/SscSPs/sya_logistica/internal/core/domain"
)

// LedgerReader defines read operations on the requirements ledger
type LedgerReader interface {
	// Snapshot returns the current on-disk content of the ledger, creating it first if absent.
	Snapshot(ctx context.Context) (*domain.LedgerDocument, error)
}

// LedgerWriter defines write operations on the requirements ledger
type LedgerWriter interface {
	// EnsureExists creates the ledger with only its header row if it does not exist yet.
	EnsureExists(ctx context.Context) error

	// Append writes rows below the last populated row and persists the ledger.
	// Either every row is saved or none is.
	Append(ctx context.Context, rows []domain.LedgerRow) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
