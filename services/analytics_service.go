// services/analytics_service.go
package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/splitlens/analytics-backend/models"
	"github.com/splitlens/analytics-backend/utils"
)

// AnalyticsStore is the aggregate query contract the reports are built on.
// Implemented by repository.AnalyticsRepository.
type AnalyticsStore interface {
	CountUsers() (int, error)
	CountGroups() (int, error)
	ExpenseTotals(since *time.Time) (int, decimal.Decimal, error)
	SettlementTotals(status string) (int, decimal.Decimal, error)
	TopSpenders(limit int) ([]models.SpenderRow, error)
	GroupActivity(limit int) ([]models.GroupActivityRow, error)
	PendingSettlements(limit int) ([]models.SettlementDetail, error)
	TotalPendingAmount() (decimal.Decimal, error)
}

// AnalyticsService builds the reporting payloads. Stateless; every call is
// an independent set of read queries.
type AnalyticsService struct {
	store AnalyticsStore
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// Summary computes the global totals as of now
func (s *AnalyticsService) Summary() (*models.SummaryResponse, error) {
	users, err := s.store.CountUsers()
	if err != nil {
		return nil, utils.NewQueryError(err)
	}

	groups, err := s.store.CountGroups()
	if err != nil {
		return nil, utils.NewQueryError(err)
	}

	expenseCount, expenseTotal, err := s.store.ExpenseTotals(nil)
	if err != nil {
		return nil, utils.NewQueryError(err)
	}

	since := time.Now().AddDate(0, 0, -utils.RecentWindowDays)
	recentCount, recentTotal, err := s.store.ExpenseTotals(&since)
	if err != nil {
		return nil, utils.NewQueryError(err)
	}

	pendingCount, pendingTotal, err := s.store.SettlementTotals(utils.StatusPending)
	if err != nil {
		return nil, utils.NewQueryError(err)
	}

	completedCount, completedTotal, err := s.store.SettlementTotals(utils.StatusCompleted)
	if err != nil {
		return nil, utils.NewQueryError(err)
	}

	return &models.SummaryResponse{
		Users:  users,
		Groups: groups,
		Expenses: models.ExpenseTotals{
			Count:       expenseCount,
			TotalAmount: expenseTotal.InexactFloat64(),
			Last30Days: models.PeriodTotals{
				Count:  recentCount,
				Amount: recentTotal.InexactFloat64(),
			},
		},
		Settlements: models.SettlementTotals{
			Pending: models.PeriodTotals{
				Count:  pendingCount,
				Amount: pendingTotal.InexactFloat64(),
			},
			Completed: models.PeriodTotals{
				Count:  completedCount,
				Amount: completedTotal.InexactFloat64(),
			},
		},
	}, nil
}

// TopSpenders ranks users by the total amount of expenses they paid
func (s *AnalyticsService) TopSpenders(limit int) (*models.TopSpendersResponse, error) {
	rows, err := s.store.TopSpenders(limit)
	if err != nil {
		return nil, utils.NewQueryError(err)
	}

	entries := make([]models.TopSpenderEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.TopSpenderEntry{
			User: models.SpenderUser{
				ID:    row.UserID,
				Name:  row.Name,
				Email: row.Email,
			},
			TotalPaid:    row.TotalPaid.InexactFloat64(),
			ExpenseCount: row.ExpenseCount,
		})
	}

	return &models.TopSpendersResponse{TopSpenders: entries}, nil
}

// GroupActivity ranks groups by their summed expense amount. The filter is
// on expense count while the order is on total amount; the two can diverge
// for groups full of zero-amount expenses, which matches the upstream
// report.
func (s *AnalyticsService) GroupActivity(limit int) (*models.GroupActivityResponse, error) {
	rows, err := s.store.GroupActivity(limit)
	if err != nil {
		return nil, utils.NewQueryError(err)
	}

	entries := make([]models.GroupActivityEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.GroupActivityEntry{
			Group: models.GroupRef{
				ID:   row.GroupID,
				Name: row.Name,
			},
			ExpenseCount: row.ExpenseCount,
			TotalAmount:  row.TotalAmount.InexactFloat64(),
			MemberCount:  row.MemberCount,
		})
	}

	return &models.GroupActivityResponse{Groups: entries}, nil
}

// UnsettledDebts lists the largest pending settlements plus the grand total
// over all of them, independent of the limit
func (s *AnalyticsService) UnsettledDebts(limit int) (*models.UnsettledDebtsResponse, error) {
	details, err := s.store.PendingSettlements(limit)
	if err != nil {
		return nil, utils.NewQueryError(err)
	}

	entries := make([]models.DebtEntry, 0, len(details))
	for _, d := range details {
		entries = append(entries, models.DebtEntry{
			ID:     d.Settlement.ID,
			From:   d.FromUser,
			To:     d.ToUser,
			Amount: d.Settlement.Amount.InexactFloat64(),
			Group:  d.Group,
			Note:   d.Settlement.Note,
			Since:  d.Settlement.CreatedAt.Format(time.RFC3339),
		})
	}

	total, err := s.store.TotalPendingAmount()
	if err != nil {
		return nil, utils.NewQueryError(err)
	}

	return &models.UnsettledDebtsResponse{
		TotalPendingAmount: total.InexactFloat64(),
		Settlements:        entries,
	}, nil
}
