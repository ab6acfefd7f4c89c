package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/splitlens/analytics-backend/models"
	"github.com/splitlens/analytics-backend/services"
	"github.com/splitlens/analytics-backend/utils"
)

// cannedStore hands back preset rows and records the limits it was asked
// for, so handler tests cover parameter parsing and JSON shaping without a
// database
type cannedStore struct {
	spenders    []models.SpenderRow
	activity    []models.GroupActivityRow
	pending     []models.SettlementDetail
	total       decimal.Decimal
	limitsSeen  []int
	statusesSeen []string
}

func (c *cannedStore) CountUsers() (int, error)  { return 0, nil }
func (c *cannedStore) CountGroups() (int, error) { return 0, nil }
func (c *cannedStore) ExpenseTotals(since *time.Time) (int, decimal.Decimal, error) {
	return 0, decimal.Zero, nil
}
func (c *cannedStore) SettlementTotals(status string) (int, decimal.Decimal, error) {
	c.statusesSeen = append(c.statusesSeen, status)
	return 0, decimal.Zero, nil
}
func (c *cannedStore) TopSpenders(limit int) ([]models.SpenderRow, error) {
	c.limitsSeen = append(c.limitsSeen, limit)
	if limit < len(c.spenders) {
		return c.spenders[:limit], nil
	}
	return c.spenders, nil
}
func (c *cannedStore) GroupActivity(limit int) ([]models.GroupActivityRow, error) {
	c.limitsSeen = append(c.limitsSeen, limit)
	return c.activity, nil
}
func (c *cannedStore) PendingSettlements(limit int) ([]models.SettlementDetail, error) {
	c.limitsSeen = append(c.limitsSeen, limit)
	return c.pending, nil
}
func (c *cannedStore) TotalPendingAmount() (decimal.Decimal, error) {
	return c.total, nil
}

type cannedBalanceStore struct {
	exists bool
}

func (c *cannedBalanceStore) GroupExists(groupID int64) (bool, error) { return c.exists, nil }
func (c *cannedBalanceStore) GroupExpenses(groupID int64) ([]models.Expense, error) {
	return nil, nil
}
func (c *cannedBalanceStore) GroupSettlements(groupID int64) ([]models.Settlement, error) {
	return nil, nil
}

func newTestRouter(store *cannedStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handlerServices = &HandlerServices{
		AnalyticsService: services.NewAnalyticsService(store),
		BalanceService:   services.NewBalanceService(&cannedBalanceStore{exists: true}),
	}

	router := gin.New()
	router.GET("/analytics/summary/", Summary)
	router.GET("/analytics/top-spenders/", TopSpenders)
	router.GET("/analytics/group-activity/", GroupActivity)
	router.GET("/analytics/unsettled-debts/", UnsettledDebts)
	router.GET("/analytics/groups/:groupId/balances", GroupBalances)
	return router
}

func doGET(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSummaryHandler_EmptyTables(t *testing.T) {
	router := newTestRouter(&cannedStore{})

	w := doGET(t, router, "/analytics/summary/")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.JSONEq(t, `{"count": 0, "total_amount": 0, "last_30_days": {"count": 0, "amount": 0}}`,
		string(body["expenses"]))
	assert.JSONEq(t, `{"pending": {"count": 0, "amount": 0}, "completed": {"count": 0, "amount": 0}}`,
		string(body["settlements"]))
}

func TestTopSpendersHandler_ResponseShape(t *testing.T) {
	store := &cannedStore{
		spenders: []models.SpenderRow{
			{UserID: 2, Name: "Bob", Email: "bob@example.com", TotalPaid: decimal.RequireFromString("200.00"), ExpenseCount: 1},
		},
	}
	router := newTestRouter(store)

	w := doGET(t, router, "/analytics/top-spenders/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"top_spenders": [{"user": {"id": 2, "name": "Bob", "email": "bob@example.com"}, "total_paid": 200, "expense_count": 1}]}`,
		w.Body.String())

	// Default limit reaches the store untouched
	assert.Equal(t, []int{utils.DefaultSpendersLimit}, store.limitsSeen)
}

func TestTopSpendersHandler_LimitParam(t *testing.T) {
	store := &cannedStore{
		spenders: []models.SpenderRow{
			{UserID: 1, Name: "Alice", TotalPaid: decimal.RequireFromString("300.00"), ExpenseCount: 3},
			{UserID: 2, Name: "Bob", TotalPaid: decimal.RequireFromString("200.00"), ExpenseCount: 1},
		},
	}
	router := newTestRouter(store)

	w := doGET(t, router, "/analytics/top-spenders/?limit=1")
	assert.Equal(t, http.StatusOK, w.Code)

	var body models.TopSpendersResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.TopSpenders, 1)
}

func TestTopSpendersHandler_MalformedLimit(t *testing.T) {
	router := newTestRouter(&cannedStore{})

	for _, raw := range []string{"abc", "1.5", "-3", "0"} {
		w := doGET(t, router, "/analytics/top-spenders/?limit="+raw)
		assert.Equal(t, http.StatusBadRequest, w.Code, "limit=%s", raw)
	}
}

func TestGroupActivityHandler_ResponseShape(t *testing.T) {
	store := &cannedStore{
		activity: []models.GroupActivityRow{
			{GroupID: 1, Name: "Goa Trip", ExpenseCount: 2, TotalAmount: decimal.RequireFromString("750.00"), MemberCount: 3},
		},
	}
	router := newTestRouter(store)

	w := doGET(t, router, "/analytics/group-activity/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"groups": [{"group": {"id": 1, "name": "Goa Trip"}, "expense_count": 2, "total_amount": 750, "member_count": 3}]}`,
		w.Body.String())
}

func TestUnsettledDebtsHandler_NullGroupAndNote(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := &cannedStore{
		pending: []models.SettlementDetail{
			{
				Settlement: models.Settlement{ID: 7, Amount: decimal.RequireFromString("125.00"), CreatedAt: created},
				FromUser:   models.UserRef{ID: 2, Name: "Bob"},
				ToUser:     models.UserRef{ID: 1, Name: "Alice"},
			},
		},
		total: decimal.RequireFromString("200.00"),
	}
	router := newTestRouter(store)

	w := doGET(t, router, "/analytics/unsettled-debts/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"total_pending_amount": 200,
          "settlements": [{"id": 7,
                           "from": {"id": 2, "name": "Bob"},
                           "to": {"id": 1, "name": "Alice"},
                           "amount": 125,
                           "group": null,
                           "note": null,
                           "since": "2025-06-01T12:00:00Z"}]}`,
		w.Body.String())

	assert.Equal(t, []int{utils.DefaultDebtsLimit}, store.limitsSeen)
}

func TestGroupBalancesHandler_BadGroupID(t *testing.T) {
	router := newTestRouter(&cannedStore{})

	w := doGET(t, router, "/analytics/groups/abc/balances")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSummaryHandler_QueriesBothStatuses(t *testing.T) {
	store := &cannedStore{}
	router := newTestRouter(store)

	w := doGET(t, router, "/analytics/summary/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{utils.StatusPending, utils.StatusCompleted}, store.statusesSeen)
}
