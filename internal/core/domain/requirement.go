package domain

import "github.com/shopspring/decimal"

// LineItem is a single product/unit/quantity entry within a submission.
type LineItem struct {
	Product  string          `json:"product"`
	Unit     string          `json:"unit"`
	Quantity decimal.Decimal `json:"quantity"` // Non-negative, no upper bound
}

// RequirementSubmission bundles the shared header fields of one request with its line items.
// It is never persisted as a unit; it is expanded into one LedgerRow per item.
type RequirementSubmission struct {
	Date      string     `json:"date"`
	Requester string     `json:"requester"`
	WorkOrder string     `json:"workOrder"`
	Client    string     `json:"client"`
	Items     []LineItem `json:"items"`
}

// Rows expands the submission into ledger rows, one per line item, in item order.
func (s RequirementSubmission) Rows() []LedgerRow {
	rows := make([]LedgerRow, 0, len(s.Items))
	for _, item := range s.Items {
		rows = append(rows, LedgerRow{
			Date:      s.Date,
			Requester: s.Requester,
			WorkOrder: s.WorkOrder,
			Client:    s.Client,
			Product:   item.Product,
			Unit:      item.Unit,
			Quantity:  item.Quantity,
		})
	}
	return rows
}

// SubmitResult reports a committed submission.
type SubmitResult struct {
	SubmissionID string `json:"submissionID"`
	RowsWritten  int    `json:"rowsWritten"`
}
