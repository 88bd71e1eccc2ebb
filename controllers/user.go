package controllers

import (
	"errors"
	"net/http"

	"DoctorsPortal/models"
	"DoctorsPortal/util"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) User(router *gin.Engine) {
	router.POST("/users", h.CreateUser)
	router.GET("/users", h.FetchAllUsers)
	router.GET("/users/admin/:email", h.CheckAdmin)
	router.PUT("/users/admin/:id", h.Auth, h.Admin, h.MakeAdmin)
}

func (h *Handlers) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		bindFailed(c, err)
		return
	}
	res, err := h.Users.CreateUser(c.Request.Context(), &user)
	if err != nil {
		fail(c, err)
		return
	}
	inserted(c, res)
}

func (h *Handlers) FetchAllUsers(c *gin.Context) {
	users, err := h.Users.FetchAllUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("users", users))
}

func (h *Handlers) CheckAdmin(c *gin.Context) {
	isAdmin, err := h.Users.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("isAdmin", isAdmin))
}

/*
* Admin only
* Promote the user with the id from the path
 */
func (h *Handlers) MakeAdmin(c *gin.Context) {
	if err := h.Users.MakeAdmin(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("message", "user promoted to admin"))
}

/*
* Issue a token for an email that has a user record
* Unknown emails get an empty token
 */
func (h *Handlers) IssueToken(c *gin.Context) {
	token, err := h.Users.IssueToken(c.Request.Context(), c.Query("email"))
	if err != nil {
		body := util.FailedResponse(err)
		if errors.Is(err, util.ErrUnauthorized) {
			body["token"] = ""
		}
		c.JSON(util.StatusFor(err), body)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("token", token))
}
