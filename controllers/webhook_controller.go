package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/templatehub/backend/payments"
	"github.com/templatehub/backend/utils"
)

// PaymentWebhook handles POST /webhook - the gateway's server-to-server
// notification endpoint. Delivery is at least once and possibly duplicated;
// every non-error path must acknowledge with a 200 or the gateway keeps
// retrying.
func PaymentWebhook(c *gin.Context) {
	utils.LogInfo("Webhook endpoint reached")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.LogError("Failed to read webhook body: %v", err)
		utils.BadRequest(c, "Failed to read request body", nil)
		return
	}

	// Verify authenticity before trusting anything in the payload. Skipped
	// when no secret is configured (local development).
	if secret := os.Getenv("CASHFREE_WEBHOOK_SECRET"); secret != "" {
		timestamp := c.GetHeader("x-webhook-timestamp")
		signature := c.GetHeader("x-webhook-signature")
		if !payments.VerifySignature(secret, timestamp, body, signature) {
			utils.LogError("Webhook signature verification failed")
			utils.Unauthorized(c, "Invalid webhook signature")
			return
		}
	}

	var payload payments.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		utils.LogError("Failed to parse webhook payload: %v", err)
		utils.BadRequest(c, "Invalid webhook payload", err.Error())
		return
	}

	outcome, err := paymentService.HandleWebhook(payload)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrMissingEvent):
			utils.BadRequest(c, "No event or type specified", nil)
		case errors.Is(err, payments.ErrMissingOrderID):
			utils.BadRequest(c, "No order_id found", nil)
		case errors.Is(err, payments.ErrPaymentNotFound):
			utils.NotFound(c, "Payment not found")
		default:
			utils.LogError("Webhook processing failed: %v", err)
			utils.InternalServerError(c, "Failed to process webhook", err.Error())
		}
		return
	}

	if outcome == payments.OutcomeIgnored {
		utils.Success(c, "Event ignored", gin.H{"status": "ignored"})
		return
	}
	utils.Success(c, "Webhook processed", gin.H{"status": "success"})
}
