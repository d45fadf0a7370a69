package handlers

import "github.com/gin-gonic/gin"

// CORSMiddleware allows the pages' scripts to hit the JSON API from any
// origin. The site serves public marketing content; nothing here is
// credentialed beyond the session cookie, which CORS never forwards
// cross-origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
