// services/export_service.go
package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/splitlens/analytics-backend/models"
	"github.com/splitlens/analytics-backend/utils"
)

// ExportService renders the analytics reports into an Excel workbook
type ExportService struct {
	analyticsService *AnalyticsService
}

// NewExportService creates a new ExportService
func NewExportService(analyticsService *AnalyticsService) *ExportService {
	return &ExportService{analyticsService: analyticsService}
}

// ExportReport generates a workbook with one sheet per report. The limit
// applies to the two ranked sheets.
func (s *ExportService) ExportReport(limit int) (*excelize.File, string, error) {
	summary, err := s.analyticsService.Summary()
	if err != nil {
		return nil, "", fmt.Errorf("failed to build summary: %v", err)
	}

	spenders, err := s.analyticsService.TopSpenders(limit)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build top spenders: %v", err)
	}

	activity, err := s.analyticsService.GroupActivity(limit)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build group activity: %v", err)
	}

	f := excelize.NewFile()

	if err := s.createSummarySheet(f, summary); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}
	if err := s.createTopSpendersSheet(f, spenders); err != nil {
		return nil, "", fmt.Errorf("failed to create top spenders sheet: %v", err)
	}
	if err := s.createGroupActivitySheet(f, activity); err != nil {
		return nil, "", fmt.Errorf("failed to create group activity sheet: %v", err)
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_%s.xlsx",
		utils.CleanFileName("Expense Analytics"),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

func headerStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	return style
}

// createSummarySheet writes the global totals as label/value rows
func (s *ExportService) createSummarySheet(f *excelize.File, summary *models.SummaryResponse) error {
	sheetName := "Summary"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	f.SetCellValue(sheetName, "A1", "Metric")
	f.SetCellValue(sheetName, "B1", "Value")
	f.SetCellStyle(sheetName, "A1", "B1", headerStyle(f))

	rows := []struct {
		label string
		value interface{}
	}{
		{"Total Users", summary.Users},
		{"Total Groups", summary.Groups},
		{"Total Expenses", summary.Expenses.Count},
		{"Total Expense Amount", summary.Expenses.TotalAmount},
		{"Expenses (Last 30 Days)", summary.Expenses.Last30Days.Count},
		{"Expense Amount (Last 30 Days)", summary.Expenses.Last30Days.Amount},
		{"Pending Settlements", summary.Settlements.Pending.Count},
		{"Pending Settlement Amount", summary.Settlements.Pending.Amount},
		{"Completed Settlements", summary.Settlements.Completed.Count},
		{"Completed Settlement Amount", summary.Settlements.Completed.Amount},
	}
	for i, row := range rows {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+2), row.label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", i+2), row.value)
	}

	f.SetColWidth(sheetName, "A", "A", 30)
	f.SetColWidth(sheetName, "B", "B", 15)

	return nil
}

// createTopSpendersSheet writes the ranked spender rows
func (s *ExportService) createTopSpendersSheet(f *excelize.File, spenders *models.TopSpendersResponse) error {
	sheetName := "Top Spenders"
	f.NewSheet(sheetName)

	headers := []string{"Rank", "Name", "Email", "Total Paid", "Expense Count"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, "A1", "E1", headerStyle(f))

	for i, entry := range spenders.TopSpenders {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), entry.User.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), entry.User.Email)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), entry.TotalPaid)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), entry.ExpenseCount)
	}

	f.SetColWidth(sheetName, "A", "E", 15)
	f.SetColWidth(sheetName, "C", "C", 28)

	return nil
}

// createGroupActivitySheet writes the ranked group rows
func (s *ExportService) createGroupActivitySheet(f *excelize.File, activity *models.GroupActivityResponse) error {
	sheetName := "Group Activity"
	f.NewSheet(sheetName)

	headers := []string{"Rank", "Group", "Expense Count", "Total Amount", "Member Count"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, "A1", "E1", headerStyle(f))

	for i, entry := range activity.Groups {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), entry.Group.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), entry.ExpenseCount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), entry.TotalAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), entry.MemberCount)
	}

	f.SetColWidth(sheetName, "A", "E", 15)
	f.SetColWidth(sheetName, "B", "B", 24)

	return nil
}
