package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORSMiddleware 跨域中间件，origins 为空时允许所有来源
func CORSMiddleware(origins []string) gin.HandlerFunc {
	options := cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         600,
	}
	if len(origins) == 0 {
		options.AllowedOrigins = []string{"*"}
	}
	handler := cors.New(options)

	return func(c *gin.Context) {
		handler.HandlerFunc(c.Writer, c.Request)

		// 预检请求到此结束
		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
