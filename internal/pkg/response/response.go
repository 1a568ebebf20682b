// Package response writes the flat JSON envelope the landing page consumes:
// {"success": bool, "message": ...} plus endpoint-specific fields.
package response

import "github.com/gin-gonic/gin"

func OK(c *gin.Context, statusCode int, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}
