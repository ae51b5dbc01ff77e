package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/SscSPs/sya_logistica/internal/apperrors"
	"github.com/SscSPs/sya_logistica/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubmitRequirementsRequest is the body sent by the mobile form.
// String fields are accepted as-is; field checks belong to the client.
type SubmitRequirementsRequest struct {
	Fecha        string               `json:"fecha"`
	Solicitante  string               `json:"solicitante"`
	OrdenTrabajo string               `json:"orden_trabajo"`
	Cliente      string               `json:"cliente"`
	Productos    []ProductLineRequest `json:"productos"`
}

// ProductLineRequest is one requested product.
// Cantidad is kept raw so that both JSON numbers and numeric strings can be coerced.
type ProductLineRequest struct {
	Producto string          `json:"producto"`
	Unidad   string          `json:"unidad"`
	Cantidad json.RawMessage `json:"cantidad" swaggertype:"number"`
}

// SubmitRequirementsResponse is returned by the submission endpoint.
type SubmitRequirementsResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	RowsWritten  *int   `json:"rows_written,omitempty"`
	SubmissionID string `json:"submission_id,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ParseQuantity coerces a raw JSON quantity to a decimal.
// An absent or null quantity counts as zero.
func ParseQuantity(raw json.RawMessage) (decimal.Decimal, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return decimal.Zero, nil
	}

	text := string(trimmed)
	if trimmed[0] == '"' {
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return decimal.Zero, fmt.Errorf("%w: quantity %s is not a valid string", apperrors.ErrValidation, string(trimmed))
		}
		text = strings.TrimSpace(text)
	}

	qty, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: quantity %q is not a number", apperrors.ErrValidation, text)
	}
	if qty.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: quantity %s is negative", apperrors.ErrValidation, qty.String())
	}
	// Quantities are stored as numeric cells; +Inf is not a valid cell value.
	if f := qty.InexactFloat64(); math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, fmt.Errorf("%w: quantity %s is out of range", apperrors.ErrValidation, text)
	}
	return qty, nil
}

// ToRequirementSubmission converts the request to a domain submission,
// coercing every quantity. The first bad quantity aborts the conversion.
func ToRequirementSubmission(req SubmitRequirementsRequest) (domain.RequirementSubmission, error) {
	sub := domain.RequirementSubmission{
		Date:      req.Fecha,
		Requester: req.Solicitante,
		WorkOrder: req.OrdenTrabajo,
		Client:    req.Cliente,
		Items:     make([]domain.LineItem, 0, len(req.Productos)),
	}

	for i, p := range req.Productos {
		qty, err := ParseQuantity(p.Cantidad)
		if err != nil {
			return domain.RequirementSubmission{}, fmt.Errorf("product %d (%s): %w", i+1, p.Producto, err)
		}
		sub.Items = append(sub.Items, domain.LineItem{
			Product:  p.Producto,
			Unit:     p.Unidad,
			Quantity: qty,
		})
	}

	return sub, nil
}
