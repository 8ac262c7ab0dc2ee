package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/templatehub/backend/controllers"
	"github.com/templatehub/backend/middleware"
	"github.com/templatehub/backend/utils"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	api := router.Group("/api")
	{
		// Catalog
		api.GET("/categories", controllers.GetCategories)
		api.GET("/templates", controllers.GetTemplates)
		api.GET("/templates/:id", controllers.GetTemplateDetails)
		api.GET("/templates/:id/reviews", controllers.GetTemplateReviews)
		api.POST("/reviews/submit", controllers.SubmitReview)

		// Payments
		api.POST("/templates/:id/initiate-payment", controllers.InitiatePayment)
		api.GET("/payments/:orderId", controllers.GetPaymentStatus)
		api.GET("/payments/:orderId/receipt", controllers.DownloadReceipt)
		api.POST("/webhook", controllers.PaymentWebhook)

		// Support
		api.POST("/support", controllers.CreateInquiry)
		api.POST("/support/track", controllers.TrackInquiry)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/login", controllers.AdminLogin)

		protected := admin.Group("")
		protected.Use(middleware.AdminAuth())
		{
			protected.GET("/payments", controllers.ListPayments)
			protected.GET("/payments/export", controllers.DownloadSalesReportExcel)
			protected.POST("/payments/:orderId/resend", controllers.ResendFulfillment)
			protected.POST("/support/:id/respond", controllers.RespondToInquiry)
			protected.POST("/categories", controllers.CreateCategory)
		}
	}

	return router
}
