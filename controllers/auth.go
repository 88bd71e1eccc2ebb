package controllers

import "github.com/gin-gonic/gin"

func (h *Handlers) Token(router *gin.Engine) {
	router.GET("/jwt", h.IssueToken)
}
