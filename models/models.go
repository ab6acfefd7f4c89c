// models/models.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a row in the externally owned users table. The password
// hash column exists in the schema but is never selected by this service.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Group represents a group of users sharing expenses
type Group struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// GroupMember links a user to a group with a role
type GroupMember struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	GroupID   int64     `json:"groupId"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expense represents a shared expense paid by one user on behalf of a group
type Expense struct {
	ID          int64           `json:"id"`
	Description *string         `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	SplitType   string          `json:"splitType"`
	GroupID     int64           `json:"groupId"`
	PaidByID    int64           `json:"paidById"`
	Splits      []ExpenseSplit  `json:"splits,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ExpenseSplit is one user's share of an expense
type ExpenseSplit struct {
	ID        int64           `json:"id"`
	ExpenseID int64           `json:"expenseId"`
	UserID    int64           `json:"userId"`
	Amount    decimal.Decimal `json:"amount"`
}

// Settlement represents a debt of a fixed amount owed by one user to
// another, optionally scoped to a group. Status transitions are owned by
// the upstream application; this service only ever reads them.
type Settlement struct {
	ID         int64           `json:"id"`
	FromUserID int64           `json:"fromUserId"`
	ToUserID   int64           `json:"toUserId"`
	GroupID    *int64          `json:"groupId,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	Note       *string         `json:"note,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
