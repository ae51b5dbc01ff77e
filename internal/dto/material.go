package dto

import "github.com/SscSPs/sya_logistica/internal/core/domain"

// MaterialResponse is one catalog entry as served to the mobile form.
type MaterialResponse struct {
	Material string `json:"material"`
	Unidad   string `json:"unidad"`
}

// ErrorResponse carries a plain error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToMaterialResponse converts a catalog entry to its response DTO
func ToMaterialResponse(entry domain.MaterialCatalogEntry) MaterialResponse {
	return MaterialResponse{
		Material: entry.Name,
		Unidad:   entry.Unit,
	}
}

// ToListMaterialResponse converts catalog entries to response DTOs, never returning nil
func ToListMaterialResponse(entries []domain.MaterialCatalogEntry) []MaterialResponse {
	res := make([]MaterialResponse, len(entries))
	for i, entry := range entries {
		res[i] = ToMaterialResponse(entry)
	}
	return res
}
