// services/catalog_service.go
package services

import (
	"github.com/splitlens/analytics-backend/models"
	"github.com/splitlens/analytics-backend/utils"
)

// CatalogStore is the listing contract for the admin catalog.
// Implemented by repository.CatalogRepository.
type CatalogStore interface {
	ListUsers(search string, limit int) ([]models.AdminUserRow, error)
	ListGroups(search string, limit int) ([]models.AdminGroupRow, error)
	ListGroupMembers(role string, limit int) ([]models.AdminGroupMemberRow, error)
	ListExpenses(filter models.ExpenseListFilter, limit int) ([]models.AdminExpenseRow, error)
	ListExpenseSplits(limit int) ([]models.AdminExpenseSplitRow, error)
	ListSettlements(status string, limit int) ([]models.AdminSettlementRow, error)
}

// CatalogService serves the read-only admin listings over the six tables
type CatalogService struct {
	store CatalogStore
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(store CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

// Users lists users matching the search term. The password hash never
// leaves the database.
func (s *CatalogService) Users(search string, limit int) ([]models.AdminUserRow, error) {
	rows, err := s.store.ListUsers(search, limit)
	if err != nil {
		return nil, utils.NewQueryError(err)
	}
	return emptyIfNil(rows), nil
}

// Groups lists groups matching the search term
func (s *CatalogService) Groups(search string, limit int) ([]models.AdminGroupRow, error) {
	rows, err := s.store.ListGroups(search, limit)
	if err != nil {
		return nil, utils.NewQueryError(err)
	}
	return emptyIfNil(rows), nil
}

// GroupMembers lists memberships, optionally filtered by role
func (s *CatalogService) GroupMembers(role string, limit int) ([]models.AdminGroupMemberRow, error) {
	rows, err := s.store.ListGroupMembers(role, limit)
	if err != nil {
		return nil, utils.NewQueryError(err)
	}
	return emptyIfNil(rows), nil
}

// Expenses lists expenses narrowed by the filter
func (s *CatalogService) Expenses(filter models.ExpenseListFilter, limit int) ([]models.AdminExpenseRow, error) {
	rows, err := s.store.ListExpenses(filter, limit)
	if err != nil {
		return nil, utils.NewQueryError(err)
	}
	return emptyIfNil(rows), nil
}

// ExpenseSplits lists expense splits
func (s *CatalogService) ExpenseSplits(limit int) ([]models.AdminExpenseSplitRow, error) {
	rows, err := s.store.ListExpenseSplits(limit)
	if err != nil {
		return nil, utils.NewQueryError(err)
	}
	return emptyIfNil(rows), nil
}

// Settlements lists settlements, optionally filtered by status
func (s *CatalogService) Settlements(status string, limit int) ([]models.AdminSettlementRow, error) {
	rows, err := s.store.ListSettlements(status, limit)
	if err != nil {
		return nil, utils.NewQueryError(err)
	}
	return emptyIfNil(rows), nil
}

// Listings render as [] rather than null when empty
func emptyIfNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
