package controllers

import (
	"net/http"

	"DoctorsPortal/config/authorization"
	"DoctorsPortal/models"
	"DoctorsPortal/util"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) Doctor(router *gin.Engine) {
	doctor := router.Group("/doctors", h.Auth, h.Admin)
	doctor.POST("", h.CreateDoctor)
	doctor.GET("", h.FetchAllDoctors)
	doctor.DELETE("/:id", h.DeleteDoctor)
}

/*
* Bind JSON
* Stamp the admin's email as creator and pass to the service
 */
func (h *Handlers) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		bindFailed(c, err)
		return
	}
	createdBy, _ := authorization.Email(c)
	id, err := h.Doctors.CreateDoctor(c.Request.Context(), &doctor, createdBy)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("insertedId", id.Hex()))
}

func (h *Handlers) FetchAllDoctors(c *gin.Context) {
	doctors, err := h.Doctors.FetchAllDoctors(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("doctors", doctors))
}

/*
* Extract id from the path
* Pass to the service
 */
func (h *Handlers) DeleteDoctor(c *gin.Context) {
	id := c.Param("id")
	if err := h.Doctors.DeleteDoctor(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("deletedId", id))
}
