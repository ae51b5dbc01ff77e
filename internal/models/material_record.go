package models

// Catalog file column names.
const (
	CatalogColumnMaterial = "material"
	CatalogColumnUnit     = "unidad"
)

// CatalogColumns are the columns read from the catalog file, in output order.
var CatalogColumns = []string{CatalogColumnMaterial, CatalogColumnUnit}
