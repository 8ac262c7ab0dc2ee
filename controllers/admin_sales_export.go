package controllers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/templatehub/backend/config"
	"github.com/templatehub/backend/models"
	"github.com/templatehub/backend/utils"
)

// DownloadSalesReportExcel handles GET /admin/payments/export - sales
// report over payments as an Excel file (admin only)
func DownloadSalesReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadSalesReportExcel called")

	period := c.DefaultQuery("period", "day")

	now := time.Now()
	var startDate, endDate time.Time

	switch period {
	case "day":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
	case "week":
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		startDate = endDate.AddDate(0, 0, -6)
		startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	case "month":
		startDate = now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
		endDate = now.Add(24 * time.Hour)
	default:
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}

	var records []models.Payment
	query := config.DB.Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Preload("Template").
		Order("created_at DESC")
	if err := query.Find(&records).Error; err != nil {
		utils.LogError("Failed to fetch payments: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d payments for Excel report", len(records))

	var summary struct {
		TotalAttempts int
		Successful    int
		Failed        int
		Pending       int
		Revenue       float64
	}
	for _, p := range records {
		summary.TotalAttempts++
		switch p.Status {
		case models.PaymentStatusSuccess:
			summary.Successful++
			summary.Revenue += p.Amount
		case models.PaymentStatusFailed:
			summary.Failed++
		default:
			summary.Pending++
		}
	}
	summary.Revenue = math.Round(summary.Revenue*100) / 100

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sales Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	companyRow := sheet.AddRow()
	companyRow.AddCell().SetString("TEMPLATEHUB - Sales Report")
	companyRow = sheet.AddRow()
	companyRow.AddCell().SetString("Email: support@templatehub.com")
	companyRow = sheet.AddRow()
	companyRow.AddCell().SetString("Period: " + strings.ToUpper(period) + " | " + startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"))
	sheet.AddRow() // spacing

	headers := []string{"Order ID", "Template", "Email", "Amount", "Status", "Date"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, p := range records {
		row := sheet.AddRow()
		row.AddCell().SetString(p.OrderID)
		row.AddCell().SetString(p.Template.Title)
		row.AddCell().SetString(p.UserEmail)
		row.AddCell().SetFloat(p.Amount)
		row.AddCell().SetString(p.Status)
		row.AddCell().SetString(p.CreatedAt.Format("2006-01-02 15:04"))
	}

	sheet.AddRow() // spacing

	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Attempts", fmt.Sprintf("%d", summary.TotalAttempts)},
		{"Successful", fmt.Sprintf("%d", summary.Successful)},
		{"Failed", fmt.Sprintf("%d", summary.Failed)},
		{"Pending", fmt.Sprintf("%d", summary.Pending)},
		{"Revenue", fmt.Sprintf("%.2f", summary.Revenue)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=sales-report-%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
	}
}
