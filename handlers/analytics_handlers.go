// handlers/analytics_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/splitlens/analytics-backend/utils"
)

// Summary returns the global totals over users, groups, expenses and
// settlements
func Summary(c *gin.Context) {
	summary, err := handlerServices.AnalyticsService.Summary()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, summary)
}

// TopSpenders returns users ranked by total paid expense amount
func TopSpenders(c *gin.Context) {
	limit, err := utils.ParseLimit(c.Query("limit"), utils.DefaultSpendersLimit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	spenders, err := handlerServices.AnalyticsService.TopSpenders(limit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, spenders)
}

// GroupActivity returns groups ranked by total expense amount
func GroupActivity(c *gin.Context) {
	limit, err := utils.ParseLimit(c.Query("limit"), utils.DefaultActivityLimit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	activity, err := handlerServices.AnalyticsService.GroupActivity(limit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, activity)
}

// UnsettledDebts returns the largest pending settlements and the total
// amount still owed across all of them
func UnsettledDebts(c *gin.Context) {
	limit, err := utils.ParseLimit(c.Query("limit"), utils.DefaultDebtsLimit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	debts, err := handlerServices.AnalyticsService.UnsettledDebts(limit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, debts)
}

// GroupBalances returns per-user net balances for a group and the
// simplified repayments that would settle them
func GroupBalances(c *gin.Context) {
	groupID, err := utils.ParseID(c.Param("groupId"), utils.ErrInvalidGroupID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	balances, err := handlerServices.BalanceService.GroupBalances(groupID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, balances)
}
