package dto

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/sya_logistica/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "integer", raw: `50`, want: "50"},
		{name: "decimal", raw: `2.75`, want: "2.75"},
		{name: "zero", raw: `0`, want: "0"},
		{name: "numeric string", raw: `"12"`, want: "12"},
		{name: "padded numeric string", raw: `" 3.5 "`, want: "3.5"},
		{name: "large value", raw: `1000000000`, want: "1000000000"},
		{name: "absent", raw: ``, want: "0"},
		{name: "null", raw: `null`, want: "0"},
		{name: "word", raw: `"abc"`, wantErr: true},
		{name: "empty string", raw: `""`, wantErr: true},
		{name: "negative", raw: `-4`, wantErr: true},
		{name: "negative string", raw: `"-0.5"`, wantErr: true},
		{name: "boolean", raw: `true`, wantErr: true},
		{name: "object", raw: `{"n":1}`, wantErr: true},
		{name: "beyond float range", raw: `1e400`, wantErr: true},
		{name: "beyond float range string", raw: `"1e400"`, wantErr: true},
		{name: "large exponent in range", raw: `1e300`, want: "1e300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuantity(json.RawMessage(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestToRequirementSubmission(t *testing.T) {
	req := SubmitRequirementsRequest{
		Fecha:        "2024/01/10",
		Solicitante:  "Ana",
		OrdenTrabajo: "OT-1",
		Cliente:      "ACME",
		Productos: []ProductLineRequest{
			{Producto: "Cable", Unidad: "m", Cantidad: json.RawMessage(`50`)},
			{Producto: "Tubo", Unidad: "u", Cantidad: json.RawMessage(`"2"`)},
		},
	}

	sub, err := ToRequirementSubmission(req)
	require.NoError(t, err)

	rows := sub.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Ana", rows[0].Requester)
	assert.Equal(t, "OT-1", rows[1].WorkOrder)
	assert.Equal(t, "Cable", rows[0].Product)
	assert.Equal(t, "Tubo", rows[1].Product)
	assert.True(t, rows[1].Quantity.Equal(decimal.NewFromInt(2)))
	assert.Nil(t, rows[0].Stock)
	assert.Nil(t, rows[0].Notes)
}

func TestToRequirementSubmission_ReportsOffendingProduct(t *testing.T) {
	req := SubmitRequirementsRequest{
		Productos: []ProductLineRequest{
			{Producto: "Cable", Cantidad: json.RawMessage(`1`)},
			{Producto: "Clavos", Cantidad: json.RawMessage(`"muchos"`)},
		},
	}

	_, err := ToRequirementSubmission(req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "product 2 (Clavos)")
}

func TestSubmitRequirementsRequest_DecodesMixedQuantities(t *testing.T) {
	body := `{"fecha":"2024/01/10","solicitante":"Ana","orden_trabajo":"OT-1","cliente":"ACME",
		"productos":[{"producto":"Cable","unidad":"m","cantidad":50},{"producto":"Tubo","unidad":"u","cantidad":"3"},{"producto":"Arena","unidad":"m3"}]}`

	var req SubmitRequirementsRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.Len(t, req.Productos, 3)

	sub, err := ToRequirementSubmission(req)
	require.NoError(t, err)
	assert.True(t, sub.Items[0].Quantity.Equal(decimal.NewFromInt(50)))
	assert.True(t, sub.Items[1].Quantity.Equal(decimal.NewFromInt(3)))
	assert.True(t, sub.Items[2].Quantity.IsZero())
}
