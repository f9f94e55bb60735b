// Package response renders the API's JSON envelope. Every endpoint answers
// with {"success": true, "data": ...} or {"success": false, "error": {...}}
// so clients can branch on one field.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes a machine-readable code (e.g. BOOKING_CONFLICT) alongside the
// human message.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails adds a payload to the error, used when the failure carries
// context the client should show, like the blocking reservation window.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
