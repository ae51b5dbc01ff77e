package domain

// MaterialCatalogEntry is one known material and its unit of measure.
type MaterialCatalogEntry struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}
