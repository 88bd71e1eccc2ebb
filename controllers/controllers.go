package controllers

import (
	"fmt"
	"net/http"

	"DoctorsPortal/services"
	"DoctorsPortal/util"

	"github.com/gin-gonic/gin"
)

// Handlers binds the services to their routes. Auth verifies the bearer
// token and Admin requires the caller to hold the admin role.
type Handlers struct {
	Appointments *services.AppointmentService
	Bookings     *services.BookingService
	Users        *services.UserService
	Doctors      *services.DoctorService
	Payments     *services.PaymentService

	Auth  gin.HandlerFunc
	Admin gin.HandlerFunc
}

func Home(c *gin.Context) {
	c.String(http.StatusOK, util.SERVER_RUNNING)
}

/*
* Status comes from the error kind
* Body is always the failure envelope
 */
func fail(c *gin.Context, err error) {
	c.JSON(util.StatusFor(err), util.FailedResponse(err))
}

func bindFailed(c *gin.Context, err error) {
	fail(c, fmt.Errorf("%w: %v", util.ErrInvalidInput, err))
}

func inserted(c *gin.Context, res *services.InsertResult) {
	if !res.Acknowledged {
		c.JSON(http.StatusOK, util.AckResponse(false, "message", res.Message))
		return
	}
	c.JSON(http.StatusOK, util.AckResponse(true, "insertedId", res.InsertedID.Hex()))
}
