// models/report_models.go
package models

import "github.com/shopspring/decimal"

// UserRef is the minimal user representation embedded in report entries
type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GroupRef is the minimal group representation embedded in report entries
type GroupRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SpenderUser carries the user fields exposed by the top spenders report
type SpenderUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PeriodTotals is a count plus summed amount over a filtered set of rows
type PeriodTotals struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// ExpenseTotals summarizes the expenses table
type ExpenseTotals struct {
	Count       int          `json:"count"`
	TotalAmount float64      `json:"total_amount"`
	Last30Days  PeriodTotals `json:"last_30_days"`
}

// SettlementTotals summarizes settlements by lifecycle status
type SettlementTotals struct {
	Pending   PeriodTotals `json:"pending"`
	Completed PeriodTotals `json:"completed"`
}

// SummaryResponse is the payload of GET /analytics/summary/
type SummaryResponse struct {
	Users       int              `json:"users"`
	Groups      int              `json:"groups"`
	Expenses    ExpenseTotals    `json:"expenses"`
	Settlements SettlementTotals `json:"settlements"`
}

// SpenderRow is one aggregated row from the top spenders query
type SpenderRow struct {
	UserID       int64
	Name         string
	Email        string
	TotalPaid    decimal.Decimal
	ExpenseCount int
}

// TopSpenderEntry is one entry in the top spenders report
type TopSpenderEntry struct {
	User         SpenderUser `json:"user"`
	TotalPaid    float64     `json:"total_paid"`
	ExpenseCount int         `json:"expense_count"`
}

// TopSpendersResponse is the payload of GET /analytics/top-spenders/
type TopSpendersResponse struct {
	TopSpenders []TopSpenderEntry `json:"top_spenders"`
}

// GroupActivityRow is one aggregated row from the group activity query
type GroupActivityRow struct {
	GroupID      int64
	Name         string
	ExpenseCount int
	TotalAmount  decimal.Decimal
	MemberCount  int
}

// GroupActivityEntry is one entry in the group activity report
type GroupActivityEntry struct {
	Group        GroupRef `json:"group"`
	ExpenseCount int      `json:"expense_count"`
	TotalAmount  float64  `json:"total_amount"`
	MemberCount  int      `json:"member_count"`
}

// GroupActivityResponse is the payload of GET /analytics/group-activity/
type GroupActivityResponse struct {
	Groups []GroupActivityEntry `json:"groups"`
}

// SettlementDetail is a pending settlement with its related rows resolved.
// Group is nil when the settlement is not scoped to a group.
type SettlementDetail struct {
	Settlement Settlement
	FromUser   UserRef
	ToUser     UserRef
	Group      *GroupRef
}

// DebtEntry is one pending settlement in the unsettled debts report
type DebtEntry struct {
	ID     int64     `json:"id"`
	From   UserRef   `json:"from"`
	To     UserRef   `json:"to"`
	Amount float64   `json:"amount"`
	Group  *GroupRef `json:"group"`
	Note   *string   `json:"note"`
	Since  string    `json:"since"`
}

// UnsettledDebtsResponse is the payload of GET /analytics/unsettled-debts/.
// TotalPendingAmount covers every pending settlement, not just the page
// returned under the limit.
type UnsettledDebtsResponse struct {
	TotalPendingAmount float64     `json:"total_pending_amount"`
	Settlements        []DebtEntry `json:"settlements"`
}

// Transaction is one simplified repayment suggested by the balance report
type Transaction struct {
	From   int64   `json:"from"`
	To     int64   `json:"to"`
	Amount float64 `json:"amount"`
}

// GroupBalancesResponse is the payload of GET /analytics/groups/:groupId/balances
type GroupBalancesResponse struct {
	Balances     map[int64]float64 `json:"balances"`
	Transactions []Transaction     `json:"transactions"`
}
