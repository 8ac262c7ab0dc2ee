package controllers

import (
	"fmt"
	"os"

	"github.com/templatehub/backend/models"
	"github.com/templatehub/backend/utils"
)

func supportInbox() string {
	if addr := os.Getenv("SUPPORT_EMAIL"); addr != "" {
		return addr
	}
	return "support@templatehub.com"
}

// sendSupportEmails dispatches the user confirmation and the support team
// alert for a new inquiry. Failures are logged only; the inquiry is already
// saved and must not fail because of mail transport.
func sendSupportEmails(inquiry *models.SupportInquiry) {
	orderRef := inquiry.OrderID
	if orderRef == "" {
		orderRef = "N/A"
	}

	confirmation := fmt.Sprintf(`
		<h2>We received your inquiry</h2>
		<p>Inquiry ID: <strong>%s</strong></p>
		<p>Type: %s<br>Order: %s</p>
		<p>%s</p>
		<p>Our team will get back to you shortly. Keep the inquiry ID handy to track progress.</p>
	`, inquiry.InquiryID, inquiry.InquiryType, orderRef, inquiry.Description)
	if err := utils.SendEmail(inquiry.Email, fmt.Sprintf("Your Support Inquiry - %s", inquiry.InquiryID), confirmation); err != nil {
		utils.LogError("Failed to send confirmation email for inquiry %s: %v", inquiry.InquiryID, err)
	} else {
		utils.LogInfo("Confirmation email sent to %s for inquiry %s", inquiry.Email, inquiry.InquiryID)
	}

	alert := fmt.Sprintf(`
		<h2>New Support Inquiry</h2>
		<p>Inquiry ID: %s<br>From: %s<br>Type: %s<br>Order: %s</p>
		<p>%s</p>
	`, inquiry.InquiryID, inquiry.Email, inquiry.InquiryType, orderRef, inquiry.Description)
	if err := utils.SendEmail(supportInbox(), fmt.Sprintf("New Support Inquiry - %s", inquiry.InquiryID), alert); err != nil {
		utils.LogError("Failed to send support alert for inquiry %s: %v", inquiry.InquiryID, err)
	} else {
		utils.LogInfo("Support alert sent for inquiry %s", inquiry.InquiryID)
	}
}

// sendResponseEmail notifies the user that an admin responded.
func sendResponseEmail(inquiry *models.SupportInquiry) {
	body := fmt.Sprintf(`
		<h2>Update on your inquiry %s</h2>
		<p>Status: %s</p>
		<p>%s</p>
		<p>Reply to this email if you need anything else.</p>
	`, inquiry.InquiryID, inquiry.Status, inquiry.Response)
	if err := utils.SendEmail(inquiry.Email, fmt.Sprintf("Update on Your Support Inquiry - %s", inquiry.InquiryID), body); err != nil {
		utils.LogError("Failed to send response email for inquiry %s: %v", inquiry.InquiryID, err)
	} else {
		utils.LogInfo("Response email sent to %s for inquiry %s", inquiry.Email, inquiry.InquiryID)
	}
}
