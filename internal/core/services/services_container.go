package services

import (
	portsrepo "github.com/SscSPs/sya_logistica/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sya_logistica/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Submission: NewSubmissionService(repos.LedgerRepo),
		Retrieval:  NewRetrievalService(repos.LedgerRepo),
		Catalog:    NewCatalogService(repos.CatalogRepo),
	}
}
