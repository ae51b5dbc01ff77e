package models

import (
	"github.com/SscSPs/sya_logistica/internal/core/domain"
)

// LedgerRecord is the worksheet representation of the columns an append owns.
// Annotation columns have no field here; appends never write them.
type LedgerRecord struct {
	Date      string
	Requester string
	WorkOrder string
	Client    string
	Product   string
	Unit      string
	Quantity  float64 // Stored as a numeric cell
}

// FromDomainLedgerRow converts a domain ledger row to its worksheet record.
func FromDomainLedgerRow(row domain.LedgerRow) LedgerRecord {
	return LedgerRecord{
		Date:      row.Date,
		Requester: row.Requester,
		WorkOrder: row.WorkOrder,
		Client:    row.Client,
		Product:   row.Product,
		Unit:      row.Unit,
		Quantity:  row.Quantity.InexactFloat64(),
	}
}

// Cells returns the record's values in ledger column order, starting at column A.
func (r LedgerRecord) Cells() []any {
	cells := make([]any, 0, domain.OwnedColumns)
	return append(cells, r.Date, r.Requester, r.WorkOrder, r.Client, r.Product, r.Unit, r.Quantity)
}
