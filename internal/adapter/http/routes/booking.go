package routes

import (
	"studio_booking/internal/adapter/http/handlers"
	"studio_booking/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}

func addBookingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, partnerHandler *handlers.PartnerHandler) {
	rg.POST(PathBookings, bookingHandler.CreateBooking)
	rg.GET(PathCalendar+"/events", bookingHandler.ListBusySlots)
	rg.GET(PathPartners+"/:code/quota", partnerHandler.GetQuota)
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		// Gateway form posts.
		payments.POST("/ecpay/notify", paymentHandler.Notify)
		payments.POST("/ecpay/result", paymentHandler.Result)
	}
}

func addCronRoutes(rg *gin.RouterGroup, cronHandler *handlers.CronHandler, secret string) {
	cron := rg.Group(PathCron, middleware.BearerSecret(secret))
	{
		cron.GET("/reconcile", cronHandler.Reconcile)
	}
}
