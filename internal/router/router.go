package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetAvailability(c *ginext.Context)
	ExportCalendar(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	UpdateBookingPayment(c *ginext.Context)
	SaveEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	BlockDates(c *ginext.Context)
	UnblockDate(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Availability
		api.GET("/availability", h.GetAvailability)
		api.GET("/calendar.ics", h.ExportCalendar)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.DELETE("/bookings/:id", h.CancelBooking)
		api.PATCH("/bookings/:id/payment", h.UpdateBookingPayment)

		// Events
		api.PUT("/events", h.SaveEvent)
		api.GET("/events", h.ListEvents)
		api.DELETE("/events/:id", h.DeleteEvent)

		// Blocked dates
		api.POST("/blocks", h.BlockDates)
		api.DELETE("/blocks/:date", h.UnblockDate)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
