package httpapi

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/lokal-market/internal/usecase"
)

// sessionHeader header pembawa session ID admin
const sessionHeader = "X-Session-ID"

// Recovery menangkap panic supaya server tidak mati
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("⚠️ Panic tertangkap: %v (path: %s)", err, c.Request.URL.Path)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// CORS mengizinkan akses dari frontend etalase
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, "+sessionHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// AdminOnly menolak request tanpa sesi admin yang valid
func AdminOnly(adminUseCase usecase.AdminUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(sessionHeader)
		if sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "butuh login admin"})
			return
		}

		isAdmin, err := adminUseCase.IsAdmin(c.Request.Context(), sessionID)
		if err != nil || !isAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sesi admin tidak valid"})
			return
		}
		c.Next()
	}
}
