package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONResult mirrors the analyzer response envelope: message plus payload
// plus elapsed seconds, so the frontend can show processing time.
func JSONResult(c *gin.Context, code int, message string, data interface{}, seconds float64) {
	c.JSON(code, gin.H{
		"success":         true,
		"message":         message,
		"data":            data,
		"processing_time": seconds,
	})
}
