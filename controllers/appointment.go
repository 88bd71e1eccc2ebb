package controllers

import (
	"net/http"

	"DoctorsPortal/util"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) Appointment(router *gin.Engine) {
	router.GET("/appOptions", h.FetchAppointmentOptions)
	router.GET("/appointmentSpecialty", h.FetchAppointmentSpecialties)
}

/*
* Read date from the query
* Pass to the service which removes booked slots
 */
func (h *Handlers) FetchAppointmentOptions(c *gin.Context) {
	options, err := h.Appointments.AvailableOptions(c.Request.Context(), c.Query("date"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("options", options))
}

func (h *Handlers) FetchAppointmentSpecialties(c *gin.Context) {
	names, err := h.Appointments.Specialties(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("specialties", names))
}
