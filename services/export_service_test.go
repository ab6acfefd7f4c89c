package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/splitlens/analytics-backend/models"
	"github.com/splitlens/analytics-backend/utils"
)

func TestExportReport_Sheets(t *testing.T) {
	store := &memStore{
		users:  []models.User{{ID: 1, Name: "Alice", Email: "alice@example.com"}},
		groups: []models.Group{{ID: 1, Name: "Goa Trip"}},
		expenses: []models.Expense{
			{ID: 1, GroupID: 1, PaidByID: 1, Amount: amt("120.00"), CreatedAt: time.Now()},
		},
	}
	service := NewExportService(NewAnalyticsService(store))

	f, filename, err := service.ExportReport(utils.DefaultSpendersLimit)
	assert.NoError(t, err)
	assert.Regexp(t, `^Expense_Analytics_\d{4}-\d{2}-\d{2}\.xlsx$`, filename)

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Summary")
	assert.Contains(t, sheets, "Top Spenders")
	assert.Contains(t, sheets, "Group Activity")
	assert.NotContains(t, sheets, "Sheet1")

	users, err := f.GetCellValue("Summary", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "1", users)

	name, err := f.GetCellValue("Top Spenders", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "Alice", name)

	group, err := f.GetCellValue("Group Activity", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "Goa Trip", group)
}

func TestExportReport_EmptyData(t *testing.T) {
	service := NewExportService(NewAnalyticsService(&memStore{}))

	f, _, err := service.ExportReport(utils.DefaultSpendersLimit)
	assert.NoError(t, err)

	total, err := f.GetCellValue("Summary", "B4")
	assert.NoError(t, err)
	assert.Equal(t, "0", total)
}
