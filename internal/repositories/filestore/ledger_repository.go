package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/SscSPs/sya_logistica/internal/core/domain"
	portsrepo "github.com/SscSPs/sya_logistica/internal/core/ports/repositories"
	"github.com/SscSPs/sya_logistica/internal/models"
	"github.com/xuri/excelize/v2"
)

// firstDataRow is the worksheet row of the first ledger entry; row 1 holds the header.
const firstDataRow = 2

// LedgerRepository stores the requirements ledger as a single-sheet xlsx workbook.
// Every operation holds the file's exclusive lock for the duration of the file access.
type LedgerRepository struct {
	BaseRepository
	sheet string
}

// NewLedgerRepository creates a ledger repository for the workbook at path.
// The file itself is created lazily.
func NewLedgerRepository(path, sheet string, lockTimeout time.Duration) (*LedgerRepository, error) {
	base, err := newBaseRepository(path, lockTimeout)
	if err != nil {
		return nil, err
	}
	return &LedgerRepository{
		BaseRepository: base,
		sheet:          sheet,
	}, nil
}

// Ensure implementation matches interface
var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

// EnsureExists creates the workbook with only the header row if it is absent.
func (r *LedgerRepository) EnsureExists(ctx context.Context) error {
	return r.withLock(ctx, "ensure ledger", r.ensureExists)
}

// Append writes rows below the last populated row and saves the workbook.
// The insertion point is recomputed from the file on every call because staff edit
// the ledger by hand between submissions. Annotation columns are never touched.
func (r *LedgerRepository) Append(ctx context.Context, rows []domain.LedgerRow) error {
	return r.withLock(ctx, "append ledger", func() error {
		if err := r.ensureExists(); err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}

		f, err := excelize.OpenFile(r.Path)
		if err != nil {
			return r.storageError("open ledger", err)
		}
		defer f.Close()

		idx, err := f.GetSheetIndex(r.sheet)
		if err != nil || idx < 0 {
			return r.storageError("open ledger", fmt.Errorf("worksheet %q not found", r.sheet))
		}

		existing, err := f.GetRows(r.sheet)
		if err != nil {
			return r.storageError("read ledger", err)
		}

		next := nextRow(len(existing))
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, next+i)
			if err != nil {
				return r.storageError("append ledger", err)
			}
			cells := models.FromDomainLedgerRow(row).Cells()
			if err := f.SetSheetRow(r.sheet, cell, &cells); err != nil {
				return r.storageError("append ledger", fmt.Errorf("row %d: %w", next+i, err))
			}
		}

		if err := r.writeAtomic(func(w io.Writer) error { return f.Write(w) }); err != nil {
			return r.storageError("save ledger", err)
		}
		return nil
	})
}

// Snapshot returns the current workbook bytes, creating the workbook first if needed.
func (r *LedgerRepository) Snapshot(ctx context.Context) (*domain.LedgerDocument, error) {
	var doc *domain.LedgerDocument
	err := r.withLock(ctx, "snapshot ledger", func() error {
		if err := r.ensureExists(); err != nil {
			return err
		}

		content, err := os.ReadFile(r.Path)
		if err != nil {
			return r.storageError("read ledger", err)
		}
		info, err := os.Stat(r.Path)
		if err != nil {
			return r.storageError("stat ledger", err)
		}

		doc = &domain.LedgerDocument{
			Filename:    domain.LedgerFilename,
			ContentType: domain.LedgerContentType,
			Content:     content,
			ModifiedAt:  info.ModTime(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ensureExists must be called with the lock held.
func (r *LedgerRepository) ensureExists() error {
	_, err := os.Stat(r.Path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return r.storageError("stat ledger", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", r.sheet); err != nil {
		return r.storageError("create ledger", err)
	}
	header := domain.LedgerHeader
	if err := f.SetSheetRow(r.sheet, "A1", &header); err != nil {
		return r.storageError("create ledger", err)
	}
	if err := r.writeAtomic(func(w io.Writer) error { return f.Write(w) }); err != nil {
		return r.storageError("create ledger", err)
	}
	return nil
}

// nextRow returns the worksheet row following the last populated one.
// Row 1 stays reserved for the header even if it was cleared by hand.
func nextRow(populated int) int {
	if populated < firstDataRow-1 {
		return firstDataRow
	}
	return populated + 1
}
