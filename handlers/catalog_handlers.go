// handlers/catalog_handlers.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/splitlens/analytics-backend/models"
	"github.com/splitlens/analytics-backend/utils"
)

// ListUsers lists users for the admin console, searchable by name or email
func ListUsers(c *gin.Context) {
	limit, err := utils.ParseLimit(c.Query("limit"), utils.DefaultAdminLimit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	users, err := handlerServices.CatalogService.Users(c.Query("search"), limit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"users": users})
}

// ListGroups lists groups, searchable by name
func ListGroups(c *gin.Context) {
	limit, err := utils.ParseLimit(c.Query("limit"), utils.DefaultAdminLimit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	groups, err := handlerServices.CatalogService.Groups(c.Query("search"), limit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"groups": groups})
}

// ListGroupMembers lists memberships, filterable by role
func ListGroupMembers(c *gin.Context) {
	limit, err := utils.ParseLimit(c.Query("limit"), utils.DefaultAdminLimit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	members, err := handlerServices.CatalogService.GroupMembers(c.Query("role"), limit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"members": members})
}

// ListExpenses lists expenses, searchable by description and filterable by
// split type and group
func ListExpenses(c *gin.Context) {
	limit, err := utils.ParseLimit(c.Query("limit"), utils.DefaultAdminLimit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	filter := models.ExpenseListFilter{
		Search:    c.Query("search"),
		SplitType: c.Query("splitType"),
	}
	if raw := c.Query("groupId"); raw != "" {
		groupID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidGroupID))
			return
		}
		filter.GroupID = groupID
	}

	expenses, err := handlerServices.CatalogService.Expenses(filter, limit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"expenses": expenses})
}

// ListExpenseSplits lists expense splits
func ListExpenseSplits(c *gin.Context) {
	limit, err := utils.ParseLimit(c.Query("limit"), utils.DefaultAdminLimit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	splits, err := handlerServices.CatalogService.ExpenseSplits(limit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"splits": splits})
}

// ListSettlements lists settlements, filterable by status
func ListSettlements(c *gin.Context) {
	limit, err := utils.ParseLimit(c.Query("limit"), utils.DefaultAdminLimit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	settlements, err := handlerServices.CatalogService.Settlements(c.Query("status"), limit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"settlements": settlements})
}
