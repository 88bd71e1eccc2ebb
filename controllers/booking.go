package controllers

import (
	"net/http"

	"DoctorsPortal/config/authorization"
	"DoctorsPortal/models"
	"DoctorsPortal/util"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) Booking(router *gin.Engine) {
	router.POST("/bookings", h.CreateBooking)
	router.GET("/bookings", h.Auth, h.FetchBookings)
	router.GET("/booking/:id", h.FetchBookingByID)
}

/*
* Bind JSON
* A second booking for the same treatment and day is refused with a message
 */
func (h *Handlers) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		bindFailed(c, err)
		return
	}
	res, err := h.Bookings.CreateBooking(c.Request.Context(), &booking)
	if err != nil {
		fail(c, err)
		return
	}
	inserted(c, res)
}

/*
* Email from the query must match the email in the token
 */
func (h *Handlers) FetchBookings(c *gin.Context) {
	caller, ok := authorization.Email(c)
	if !ok {
		fail(c, util.ErrUnauthorized)
		return
	}
	bookings, err := h.Bookings.FetchBookingsByEmail(c.Request.Context(), c.Query("email"), caller)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("bookings", bookings))
}

func (h *Handlers) FetchBookingByID(c *gin.Context) {
	booking, err := h.Bookings.FetchBookingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("booking", booking))
}
