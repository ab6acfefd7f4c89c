package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/splitlens/analytics-backend/models"
	"github.com/splitlens/analytics-backend/utils"
)

type fakeBalanceStore struct {
	exists      bool
	expenses    []models.Expense
	settlements []models.Settlement
}

func (f *fakeBalanceStore) GroupExists(groupID int64) (bool, error) { return f.exists, nil }
func (f *fakeBalanceStore) GroupExpenses(groupID int64) ([]models.Expense, error) {
	return f.expenses, nil
}
func (f *fakeBalanceStore) GroupSettlements(groupID int64) ([]models.Settlement, error) {
	return f.settlements, nil
}

func splitEvenly(expenseID int64, amount string, userIDs ...int64) []models.ExpenseSplit {
	total := amt(amount)
	share := total.Div(decimal.NewFromInt(int64(len(userIDs)))).Round(2)
	splits := make([]models.ExpenseSplit, 0, len(userIDs))
	for i, userID := range userIDs {
		splits = append(splits, models.ExpenseSplit{
			ID:        int64(i + 1),
			ExpenseID: expenseID,
			UserID:    userID,
			Amount:    share,
		})
	}
	return splits
}

func TestCalculateBalances_PayerCreditedSplittersDebited(t *testing.T) {
	expenses := []models.Expense{
		{ID: 1, PaidByID: 1, Amount: amt("300.00"), Splits: splitEvenly(1, "300.00", 1, 2)},
	}

	balances := CalculateBalances(expenses, nil)

	assert.True(t, balances[1].Equal(amt("150.00")), "payer nets +150, got %s", balances[1])
	assert.True(t, balances[2].Equal(amt("-150.00")), "splitter nets -150, got %s", balances[2])
}

func TestCalculateBalances_CompletedSettlementZeroesDebt(t *testing.T) {
	expenses := []models.Expense{
		{ID: 1, PaidByID: 1, Amount: amt("300.00"), Splits: splitEvenly(1, "300.00", 1, 2)},
	}
	settlements := []models.Settlement{
		{ID: 1, FromUserID: 2, ToUserID: 1, Amount: amt("150.00"), Status: utils.StatusCompleted},
	}

	balances := CalculateBalances(expenses, settlements)

	assert.True(t, balances[1].IsZero(), "creditor settled, got %s", balances[1])
	assert.True(t, balances[2].IsZero(), "debtor settled, got %s", balances[2])
}

func TestCalculateBalances_PendingSettlementIgnored(t *testing.T) {
	settlements := []models.Settlement{
		{ID: 1, FromUserID: 2, ToUserID: 1, Amount: amt("150.00"), Status: utils.StatusPending},
	}

	balances := CalculateBalances(nil, settlements)
	assert.Empty(t, balances)
}

func TestSimplifyDebts_SingleTransaction(t *testing.T) {
	balances := map[int64]decimal.Decimal{
		1: amt("150.00"),
		2: amt("-150.00"),
	}

	transactions := SimplifyDebts(balances)

	assert.Len(t, transactions, 1)
	assert.Equal(t, int64(2), transactions[0].From)
	assert.Equal(t, int64(1), transactions[0].To)
	assert.Equal(t, 150.0, transactions[0].Amount)
}

func TestSimplifyDebts_OneDebtorManyCreditors(t *testing.T) {
	balances := map[int64]decimal.Decimal{
		1: amt("60.00"),
		2: amt("40.00"),
		3: amt("-100.00"),
	}

	transactions := SimplifyDebts(balances)

	assert.Len(t, transactions, 2)
	total := decimal.Zero
	for _, tx := range transactions {
		assert.Equal(t, int64(3), tx.From)
		total = total.Add(decimal.NewFromFloat(tx.Amount))
	}
	assert.True(t, total.Equal(amt("100.00")), "debtor pays out 100, got %s", total)
}

func TestSimplifyDebts_SettledGroupProducesNothing(t *testing.T) {
	balances := map[int64]decimal.Decimal{
		1: decimal.Zero,
		2: amt("0.005"),
	}

	assert.Empty(t, SimplifyDebts(balances))
}

func TestGroupBalances_UnknownGroup(t *testing.T) {
	service := NewBalanceService(&fakeBalanceStore{exists: false})

	_, err := service.GroupBalances(42)
	assert.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	if assert.True(t, ok) {
		assert.Equal(t, 404, appErr.Code)
	}
}

func TestGroupBalances_EndToEnd(t *testing.T) {
	store := &fakeBalanceStore{
		exists: true,
		expenses: []models.Expense{
			{ID: 1, PaidByID: 1, Amount: amt("300.00"), Splits: splitEvenly(1, "300.00", 1, 2)},
		},
	}

	result, err := NewBalanceService(store).GroupBalances(1)
	assert.NoError(t, err)

	assert.Equal(t, 150.0, result.Balances[1])
	assert.Equal(t, -150.0, result.Balances[2])
	assert.Len(t, result.Transactions, 1)
	assert.Equal(t, models.Transaction{From: 2, To: 1, Amount: 150.0}, result.Transactions[0])
}
