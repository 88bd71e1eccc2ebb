package util

import "github.com/gin-gonic/gin"

/*
* Every response carries a success flag
* Payload goes under the given key
 */
func SuccessResponse(key string, data interface{}) gin.H {
	return gin.H{
		"success": true,
		key:       data,
	}
}

func FailedResponse(err error) gin.H {
	return gin.H{
		"success": false,
		"error":   err.Error(),
	}
}

// AckResponse is the shape used when a write was refused without failing,
// such as a second booking for the same treatment and day.
func AckResponse(acknowledged bool, key string, data interface{}) gin.H {
	return gin.H{
		"success":      true,
		"acknowledged": acknowledged,
		key:            data,
	}
}
