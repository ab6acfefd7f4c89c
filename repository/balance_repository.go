// repository/balance_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/splitlens/analytics-backend/models"
)

// BalanceRepository fetches the raw rows the balance report aggregates in
// memory: a group's expenses with their splits, and its settlements.
type BalanceRepository struct {
	DB *sql.DB
}

// NewBalanceRepository creates a new BalanceRepository
func NewBalanceRepository(db *sql.DB) *BalanceRepository {
	return &BalanceRepository{DB: db}
}

// GroupExists reports whether the group id resolves to a row
func (r *BalanceRepository) GroupExists(groupID int64) (bool, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM groups WHERE id = $1", groupID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check group: %v", err)
	}
	return count > 0, nil
}

// GroupExpenses returns a group's expenses with their splits attached
func (r *BalanceRepository) GroupExpenses(groupID int64) ([]models.Expense, error) {
	rows, err := r.DB.Query(
		`SELECT id, description, amount, "splitType", "groupId", "paidById", "createdAt", "updatedAt"
         FROM expenses
         WHERE "groupId" = $1
         ORDER BY id ASC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group expenses: %v", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	index := make(map[int64]int)
	for rows.Next() {
		var e models.Expense
		err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.SplitType,
			&e.GroupID, &e.PaidByID, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %v", err)
		}
		index[e.ID] = len(expenses)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sRows, err := r.DB.Query(
		`SELECT es.id, es."expenseId", es."userId", es.amount
         FROM expense_splits es
         JOIN expenses e ON e.id = es."expenseId"
         WHERE e."groupId" = $1
         ORDER BY es.id ASC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense splits: %v", err)
	}
	defer sRows.Close()

	for sRows.Next() {
		var s models.ExpenseSplit
		if err := sRows.Scan(&s.ID, &s.ExpenseID, &s.UserID, &s.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan expense split: %v", err)
		}
		if i, ok := index[s.ExpenseID]; ok {
			expenses[i].Splits = append(expenses[i].Splits, s)
		}
	}
	return expenses, sRows.Err()
}

// GroupSettlements returns all settlements scoped to a group, any status
func (r *BalanceRepository) GroupSettlements(groupID int64) ([]models.Settlement, error) {
	rows, err := r.DB.Query(
		`SELECT id, "fromUserId", "toUserId", "groupId", amount, status, note, "createdAt", "updatedAt"
         FROM settlements
         WHERE "groupId" = $1
         ORDER BY id ASC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group settlements: %v", err)
	}
	defer rows.Close()

	var settlements []models.Settlement
	for rows.Next() {
		var s models.Settlement
		err := rows.Scan(&s.ID, &s.FromUserID, &s.ToUserID, &s.GroupID,
			&s.Amount, &s.Status, &s.Note, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %v", err)
		}
		settlements = append(settlements, s)
	}
	return settlements, rows.Err()
}
