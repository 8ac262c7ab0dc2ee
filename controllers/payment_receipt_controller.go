package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"github.com/templatehub/backend/config"
	"github.com/templatehub/backend/models"
	"github.com/templatehub/backend/utils"
)

// DownloadReceipt generates a PDF receipt for a successful payment.
// GET /payments/:orderId/receipt
func DownloadReceipt(c *gin.Context) {
	orderID := c.Param("orderId")
	utils.LogInfo("DownloadReceipt called for order %s", orderID)

	var payment models.Payment
	if err := config.DB.Preload("Template").Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		utils.LogError("Payment not found for receipt: %s", orderID)
		utils.NotFound(c, "Payment not found")
		return
	}

	if payment.Status != models.PaymentStatusSuccess {
		utils.LogError("Receipt requested for non-successful payment %s (status %s)", orderID, payment.Status)
		utils.BadRequest(c, "Receipt is only available for successful payments", nil)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "TemplateHub")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: support@templatehub.com")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, "Order ID: "+payment.OrderID)
	pdf.Ln(8)
	pdf.Cell(100, 8, "Date: "+payment.UpdatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(100, 8, "Status: "+payment.Status)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Billed To:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, payment.UserEmail)
	if payment.UserPhone != "" {
		pdf.Ln(6)
		pdf.Cell(100, 8, "Phone: "+payment.UserPhone)
	}
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(100, 8, "Template", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(100, 8, payment.Template.Title, "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", payment.Amount), "1", 0, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(100, 8, "Thank you for your purchase!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate receipt PDF for order %s: %v", orderID, err)
		utils.InternalServerError(c, "Failed to generate receipt", err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", payment.OrderID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
