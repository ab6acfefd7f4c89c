// services/balance_service.go
package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/splitlens/analytics-backend/models"
	"github.com/splitlens/analytics-backend/utils"
)

// BalanceStore is the row-fetching contract for the group balance report.
// Implemented by repository.BalanceRepository.
type BalanceStore interface {
	GroupExists(groupID int64) (bool, error)
	GroupExpenses(groupID int64) ([]models.Expense, error)
	GroupSettlements(groupID int64) ([]models.Settlement, error)
}

// BalanceService computes per-user net balances for a group and the minimal
// set of repayments that settles them
type BalanceService struct {
	store BalanceStore
}

// NewBalanceService creates a new BalanceService
func NewBalanceService(store BalanceStore) *BalanceService {
	return &BalanceService{store: store}
}

// Tolerance below which a residual balance counts as settled
var settledEpsilon = decimal.NewFromFloat(0.01)

// GroupBalances builds the balance report for one group
func (s *BalanceService) GroupBalances(groupID int64) (*models.GroupBalancesResponse, error) {
	exists, err := s.store.GroupExists(groupID)
	if err != nil {
		return nil, utils.NewQueryError(err)
	}
	if !exists {
		return nil, utils.NewNotFoundError("Group")
	}

	expenses, err := s.store.GroupExpenses(groupID)
	if err != nil {
		return nil, utils.NewQueryError(err)
	}

	settlements, err := s.store.GroupSettlements(groupID)
	if err != nil {
		return nil, utils.NewQueryError(err)
	}

	balances := CalculateBalances(expenses, settlements)
	transactions := SimplifyDebts(balances)

	out := make(map[int64]float64, len(balances))
	for userID, amount := range balances {
		out[userID] = utils.Round(amount.InexactFloat64())
	}

	return &models.GroupBalancesResponse{
		Balances:     out,
		Transactions: transactions,
	}, nil
}

// CalculateBalances nets out who owes whom. The payer is credited the full
// expense amount and each split participant is debited their share. A
// completed settlement moves money from debtor to creditor, so it credits
// the sender and debits the receiver.
func CalculateBalances(expenses []models.Expense, settlements []models.Settlement) map[int64]decimal.Decimal {
	balances := make(map[int64]decimal.Decimal)

	for _, expense := range expenses {
		balances[expense.PaidByID] = balances[expense.PaidByID].Add(expense.Amount)
		for _, split := range expense.Splits {
			balances[split.UserID] = balances[split.UserID].Sub(split.Amount)
		}
	}

	for _, s := range settlements {
		if s.Status != utils.StatusCompleted {
			continue
		}
		balances[s.FromUserID] = balances[s.FromUserID].Add(s.Amount)
		balances[s.ToUserID] = balances[s.ToUserID].Sub(s.Amount)
	}

	return balances
}

// SimplifyDebts pairs debtors with creditors greedily until every balance is
// within a cent of zero, producing one transaction per pairing
func SimplifyDebts(balances map[int64]decimal.Decimal) []models.Transaction {
	type party struct {
		userID int64
		amount decimal.Decimal
	}

	userIDs := make([]int64, 0, len(balances))
	for userID := range balances {
		userIDs = append(userIDs, userID)
	}
	sort.Slice(userIDs, func(i, j int) bool { return userIDs[i] < userIDs[j] })

	var debtors, creditors []party
	for _, userID := range userIDs {
		amount := balances[userID]
		switch {
		case amount.LessThan(settledEpsilon.Neg()):
			debtors = append(debtors, party{userID, amount.Neg()})
		case amount.GreaterThan(settledEpsilon):
			creditors = append(creditors, party{userID, amount})
		}
	}

	transactions := []models.Transaction{}
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		settled := decimal.Min(debtor.amount, creditor.amount)
		transactions = append(transactions, models.Transaction{
			From:   debtor.userID,
			To:     creditor.userID,
			Amount: settled.Round(2).InexactFloat64(),
		})

		debtor.amount = debtor.amount.Sub(settled)
		creditor.amount = creditor.amount.Sub(settled)

		if debtor.amount.LessThan(settledEpsilon) {
			i++
		}
		if creditor.amount.LessThan(settledEpsilon) {
			j++
		}
	}

	return transactions
}
