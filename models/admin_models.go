// models/admin_models.go
package models

import "time"

// Admin catalog rows mirror the columns the old admin console displayed
// per table. Password hashes are never part of any of these.

// AdminUserRow is one row of the admin users listing
type AdminUserRow struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminGroupRow is one row of the admin groups listing
type AdminGroupRow struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AdminGroupMemberRow is one row of the admin group members listing
type AdminGroupMemberRow struct {
	ID        int64     `json:"id"`
	User      UserRef   `json:"user"`
	Group     GroupRef  `json:"group"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminExpenseRow is one row of the admin expenses listing
type AdminExpenseRow struct {
	ID          int64     `json:"id"`
	Description *string   `json:"description"`
	Amount      float64   `json:"amount"`
	SplitType   string    `json:"splitType"`
	Group       GroupRef  `json:"group"`
	PaidBy      UserRef   `json:"paidBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AdminExpenseSplitRow is one row of the admin expense splits listing
type AdminExpenseSplitRow struct {
	ID      int64   `json:"id"`
	Expense int64   `json:"expenseId"`
	User    UserRef `json:"user"`
	Amount  float64 `json:"amount"`
}

// AdminSettlementRow is one row of the admin settlements listing
type AdminSettlementRow struct {
	ID        int64     `json:"id"`
	FromUser  UserRef   `json:"fromUser"`
	ToUser    UserRef   `json:"toUser"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Group     *GroupRef `json:"group"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExpenseListFilter narrows the admin expenses listing
type ExpenseListFilter struct {
	Search    string
	SplitType string
	GroupID   int64
}
