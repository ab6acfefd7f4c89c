// repository/analytics_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/splitlens/analytics-backend/models"
)

// Settlement status values written by the upstream application
const statusPending = "PENDING"

// AnalyticsRepository runs the read-only aggregate queries backing the
// reporting endpoints. The upstream schema uses Prisma-style camelCase
// columns, hence the quoted identifiers.
type AnalyticsRepository struct {
	DB *sql.DB
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// CountUsers returns the total number of users
func (r *AnalyticsRepository) CountUsers() (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %v", err)
	}
	return count, nil
}

// CountGroups returns the total number of groups
func (r *AnalyticsRepository) CountGroups() (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM groups").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count groups: %v", err)
	}
	return count, nil
}

// ExpenseTotals returns the count and summed amount of expenses, optionally
// restricted to those created at or after since. The sum is 0 when no rows
// match, never null.
func (r *AnalyticsRepository) ExpenseTotals(since *time.Time) (int, decimal.Decimal, error) {
	var (
		count int
		total decimal.Decimal
		err   error
	)
	if since == nil {
		err = r.DB.QueryRow(
			"SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM expenses",
		).Scan(&count, &total)
	} else {
		err = r.DB.QueryRow(
			`SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM expenses WHERE "createdAt" >= $1`,
			*since,
		).Scan(&count, &total)
	}
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("failed to aggregate expenses: %v", err)
	}
	return count, total, nil
}

// SettlementTotals returns the count and summed amount of settlements in the
// given status
func (r *AnalyticsRepository) SettlementTotals(status string) (int, decimal.Decimal, error) {
	var (
		count int
		total decimal.Decimal
	)
	err := r.DB.QueryRow(
		"SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM settlements WHERE status = $1",
		status,
	).Scan(&count, &total)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("failed to aggregate settlements: %v", err)
	}
	return count, total, nil
}

// TopSpenders returns per-user totals over the expenses each user paid,
// highest total first. Users who never paid an expense are excluded by the
// inner join; ties are broken by user id so the order is deterministic.
func (r *AnalyticsRepository) TopSpenders(limit int) ([]models.SpenderRow, error) {
	rows, err := r.DB.Query(
		`SELECT u.id, u.name, u.email,
                SUM(e.amount) AS total_paid,
                COUNT(e.id) AS expense_count
         FROM users u
         JOIN expenses e ON e."paidById" = u.id
         GROUP BY u.id, u.name, u.email
         ORDER BY total_paid DESC, u.id ASC
         LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query top spenders: %v", err)
	}
	defer rows.Close()

	var spenders []models.SpenderRow
	for rows.Next() {
		var row models.SpenderRow
		if err := rows.Scan(&row.UserID, &row.Name, &row.Email, &row.TotalPaid, &row.ExpenseCount); err != nil {
			return nil, fmt.Errorf("failed to scan spender row: %v", err)
		}
		spenders = append(spenders, row)
	}
	return spenders, rows.Err()
}

// GroupActivity returns per-group expense totals, highest summed amount
// first. Groups without expenses are excluded. The member count is computed
// in a correlated subquery so it cannot cross-multiply with the expense join.
func (r *AnalyticsRepository) GroupActivity(limit int) ([]models.GroupActivityRow, error) {
	rows, err := r.DB.Query(
		`SELECT g.id, g.name,
                COUNT(e.id) AS expense_count,
                COALESCE(SUM(e.amount), 0) AS total_amount,
                (SELECT COUNT(*) FROM group_members gm WHERE gm."groupId" = g.id) AS member_count
         FROM groups g
         JOIN expenses e ON e."groupId" = g.id
         GROUP BY g.id, g.name
         ORDER BY total_amount DESC, g.id ASC
         LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query group activity: %v", err)
	}
	defer rows.Close()

	var groups []models.GroupActivityRow
	for rows.Next() {
		var row models.GroupActivityRow
		if err := rows.Scan(&row.GroupID, &row.Name, &row.ExpenseCount, &row.TotalAmount, &row.MemberCount); err != nil {
			return nil, fmt.Errorf("failed to scan group activity row: %v", err)
		}
		groups = append(groups, row)
	}
	return groups, rows.Err()
}

// PendingSettlements returns pending settlements with their from-user,
// to-user and optional group resolved, largest amount first
func (r *AnalyticsRepository) PendingSettlements(limit int) ([]models.SettlementDetail, error) {
	rows, err := r.DB.Query(
		`SELECT s.id, s.amount, s.note, s."createdAt",
                fu.id, fu.name, tu.id, tu.name,
                g.id, g.name
         FROM settlements s
         JOIN users fu ON fu.id = s."fromUserId"
         JOIN users tu ON tu.id = s."toUserId"
         LEFT JOIN groups g ON g.id = s."groupId"
         WHERE s.status = $1
         ORDER BY s.amount DESC, s.id ASC
         LIMIT $2`,
		statusPending, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending settlements: %v", err)
	}
	defer rows.Close()

	var details []models.SettlementDetail
	for rows.Next() {
		var (
			d         models.SettlementDetail
			groupID   sql.NullInt64
			groupName sql.NullString
		)
		err := rows.Scan(
			&d.Settlement.ID, &d.Settlement.Amount, &d.Settlement.Note, &d.Settlement.CreatedAt,
			&d.FromUser.ID, &d.FromUser.Name, &d.ToUser.ID, &d.ToUser.Name,
			&groupID, &groupName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement row: %v", err)
		}
		// A settlement outside any group surfaces as a null group, not an error
		if groupID.Valid {
			d.Group = &models.GroupRef{ID: groupID.Int64, Name: groupName.String}
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// TotalPendingAmount sums every pending settlement, independent of any limit
func (r *AnalyticsRepository) TotalPendingAmount() (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.DB.QueryRow(
		"SELECT COALESCE(SUM(amount), 0) FROM settlements WHERE status = $1",
		statusPending,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum pending settlements: %v", err)
	}
	return total, nil
}
