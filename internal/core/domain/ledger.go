package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger column headers, in their fixed on-disk order.
const (
	ColumnDate      = "Fecha"
	ColumnRequester = "Solicitante"
	ColumnWorkOrder = "Orden de Trabajo"
	ColumnClient    = "Cliente"
	ColumnProduct   = "Producto"
	ColumnUnit      = "Unidad"
	ColumnQuantity  = "Cantidad"
	ColumnStock     = "Stock"
	ColumnAcquired  = "Adquirido"
	ColumnBalance   = "Saldo"
	ColumnNotes     = "Observaciones"
)

// LedgerHeader is the header row of every ledger. The order never changes.
var LedgerHeader = []string{
	ColumnDate, ColumnRequester, ColumnWorkOrder, ColumnClient,
	ColumnProduct, ColumnUnit, ColumnQuantity,
	ColumnStock, ColumnAcquired, ColumnBalance, ColumnNotes,
}

// OwnedColumns is the number of leading columns written by an append.
// The remaining annotation columns belong to back-office staff.
const OwnedColumns = 7

const (
	// LedgerFilename is the download name of the ledger document.
	LedgerFilename = "sya_logistica_requerimientos.xlsx"
	// LedgerContentType is the MIME type of the ledger document.
	LedgerContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// LedgerRow is the persisted unit of the ledger.
// Stock, Acquired, Balance and Notes are annotations filled in manually after the fact;
// nil means the cell is blank. Appends never write them.
type LedgerRow struct {
	Date      string          `json:"date"`
	Requester string          `json:"requester"`
	WorkOrder string          `json:"workOrder"`
	Client    string          `json:"client"`
	Product   string          `json:"product"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	Stock     *string         `json:"stock,omitempty"`
	Acquired  *string         `json:"acquired,omitempty"`
	Balance   *string         `json:"balance,omitempty"`
	Notes     *string         `json:"notes,omitempty"`
}

// LedgerDocument is a snapshot of the ledger's on-disk content.
type LedgerDocument struct {
	Filename    string
	ContentType string
	Content     []byte
	ModifiedAt  time.Time
}
