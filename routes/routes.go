package routes

import (
	"DoctorsPortal/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, h *controllers.Handlers) {

	//public
	r.GET("/", controllers.Home)
	h.Appointment(r)
	h.Token(r)
	h.Payment(r)
	//mixed, private routes carry h.Auth and h.Admin themselves
	h.Booking(r)
	h.User(r)
	//admin
	h.Doctor(r)
}
