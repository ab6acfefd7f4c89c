// handlers/export_handlers.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitlens/analytics-backend/utils"
)

// ExportReport serves the analytics reports as an Excel download
func ExportReport(c *gin.Context) {
	limit, err := utils.ParseLimit(c.Query("limit"), utils.DefaultSpendersLimit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	excelFile, filename, err := handlerServices.ExportService.ExportReport(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export report: " + err.Error()})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file: " + err.Error()})
		return
	}
}
