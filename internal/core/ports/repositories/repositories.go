package repositories

// RepositoryProvider holds every repository the services depend on.
type RepositoryProvider struct {
	LedgerRepo  LedgerRepositoryFacade
	CatalogRepo CatalogReader
}
