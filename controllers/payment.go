package controllers

import (
	"net/http"

	"DoctorsPortal/models"
	"DoctorsPortal/util"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) Payment(router *gin.Engine) {
	router.POST("/create-payment-intent", h.CreatePaymentIntent)
	router.POST("/payments", h.RecordPayment)
}

/*
* Bind the price
* Return the client secret issued by the processor
 */
func (h *Handlers) CreatePaymentIntent(c *gin.Context) {
	var input models.PaymentIntentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFailed(c, err)
		return
	}
	secret, err := h.Payments.CreatePaymentIntent(c.Request.Context(), input.Price)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("clientSecret", secret))
}

/*
* Bind the confirmed payment
* Store it and flag the booking paid
 */
func (h *Handlers) RecordPayment(c *gin.Context) {
	var input models.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFailed(c, err)
		return
	}
	id, err := h.Payments.RecordPayment(c.Request.Context(), &input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("insertedId", id.Hex()))
}
