// repository/catalog_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/splitlens/analytics-backend/models"
)

// CatalogRepository backs the read-only admin listings. Each query selects
// exactly the columns the old admin console displayed; the users queries
// never touch the password column.
type CatalogRepository struct {
	DB *sql.DB
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ListUsers returns users, optionally filtered by a name/email search term
func (r *CatalogRepository) ListUsers(search string, limit int) ([]models.AdminUserRow, error) {
	rows, err := r.DB.Query(
		`SELECT id, name, email, phone, "createdAt"
         FROM users
         WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
         ORDER BY id ASC
         LIMIT $2`,
		search, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %v", err)
	}
	defer rows.Close()

	var users []models.AdminUserRow
	for rows.Next() {
		var u models.AdminUserRow
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %v", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ListGroups returns groups, optionally filtered by a name search term
func (r *CatalogRepository) ListGroups(search string, limit int) ([]models.AdminGroupRow, error) {
	rows, err := r.DB.Query(
		`SELECT id, name, description, "createdAt"
         FROM groups
         WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
         ORDER BY id ASC
         LIMIT $2`,
		search, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %v", err)
	}
	defer rows.Close()

	var groups []models.AdminGroupRow
	for rows.Next() {
		var g models.AdminGroupRow
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group row: %v", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// ListGroupMembers returns memberships, optionally filtered by role
func (r *CatalogRepository) ListGroupMembers(role string, limit int) ([]models.AdminGroupMemberRow, error) {
	rows, err := r.DB.Query(
		`SELECT gm.id, u.id, u.name, g.id, g.name, gm.role, gm."createdAt"
         FROM group_members gm
         JOIN users u ON u.id = gm."userId"
         JOIN groups g ON g.id = gm."groupId"
         WHERE $1 = '' OR gm.role = $1
         ORDER BY gm.id ASC
         LIMIT $2`,
		role, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list group members: %v", err)
	}
	defer rows.Close()

	var members []models.AdminGroupMemberRow
	for rows.Next() {
		var m models.AdminGroupMemberRow
		err := rows.Scan(&m.ID, &m.User.ID, &m.User.Name, &m.Group.ID, &m.Group.Name,
			&m.Role, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group member row: %v", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// ListExpenses returns expenses with their group and payer resolved,
// newest first, narrowed by the filter
func (r *CatalogRepository) ListExpenses(filter models.ExpenseListFilter, limit int) ([]models.AdminExpenseRow, error) {
	rows, err := r.DB.Query(
		`SELECT e.id, e.description, e.amount, e."splitType",
                g.id, g.name, u.id, u.name, e."createdAt"
         FROM expenses e
         JOIN groups g ON g.id = e."groupId"
         JOIN users u ON u.id = e."paidById"
         WHERE ($1 = '' OR e.description ILIKE '%' || $1 || '%')
           AND ($2 = '' OR e."splitType" = $2)
           AND ($3 = 0 OR e."groupId" = $3)
         ORDER BY e."createdAt" DESC, e.id DESC
         LIMIT $4`,
		filter.Search, filter.SplitType, filter.GroupID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %v", err)
	}
	defer rows.Close()

	var expenses []models.AdminExpenseRow
	for rows.Next() {
		var e models.AdminExpenseRow
		err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.SplitType,
			&e.Group.ID, &e.Group.Name, &e.PaidBy.ID, &e.PaidBy.Name, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %v", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// ListExpenseSplits returns expense splits with their user resolved
func (r *CatalogRepository) ListExpenseSplits(limit int) ([]models.AdminExpenseSplitRow, error) {
	rows, err := r.DB.Query(
		`SELECT es.id, es."expenseId", u.id, u.name, es.amount
         FROM expense_splits es
         JOIN users u ON u.id = es."userId"
         ORDER BY es.id ASC
         LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense splits: %v", err)
	}
	defer rows.Close()

	var splits []models.AdminExpenseSplitRow
	for rows.Next() {
		var s models.AdminExpenseSplitRow
		if err := rows.Scan(&s.ID, &s.Expense, &s.User.ID, &s.User.Name, &s.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan expense split row: %v", err)
		}
		splits = append(splits, s)
	}
	return splits, rows.Err()
}

// ListSettlements returns settlements with their users and optional group
// resolved, optionally filtered by status
func (r *CatalogRepository) ListSettlements(status string, limit int) ([]models.AdminSettlementRow, error) {
	rows, err := r.DB.Query(
		`SELECT s.id, fu.id, fu.name, tu.id, tu.name,
                s.amount, s.status, g.id, g.name, s."createdAt"
         FROM settlements s
         JOIN users fu ON fu.id = s."fromUserId"
         JOIN users tu ON tu.id = s."toUserId"
         LEFT JOIN groups g ON g.id = s."groupId"
         WHERE $1 = '' OR s.status = $1
         ORDER BY s.id ASC
         LIMIT $2`,
		status, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %v", err)
	}
	defer rows.Close()

	var settlements []models.AdminSettlementRow
	for rows.Next() {
		var (
			s         models.AdminSettlementRow
			groupID   sql.NullInt64
			groupName sql.NullString
		)
		err := rows.Scan(&s.ID, &s.FromUser.ID, &s.FromUser.Name, &s.ToUser.ID, &s.ToUser.Name,
			&s.Amount, &s.Status, &groupID, &groupName, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement row: %v", err)
		}
		if groupID.Valid {
			s.Group = &models.GroupRef{ID: groupID.Int64, Name: groupName.String}
		}
		settlements = append(settlements, s)
	}
	return settlements, rows.Err()
}
