package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hr-hierarchy/internal/api/handler"
	"hr-hierarchy/internal/api/middleware"
	"hr-hierarchy/internal/pkg/config"
	"hr-hierarchy/internal/service"
)

// Setup 设置路由
func Setup(cfg *config.Config, employeeService service.EmployeeService) (*gin.Engine, error) {
	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigins))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 监控指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger API 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 初始化Handler
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	// 员工层级
	groupEmployees := r.Group("/employees")
	if cfg.Server.RateLimit != "" {
		limit, err := middleware.RateLimitMiddleware(cfg.Server.RateLimit)
		if err != nil {
			return nil, err
		}
		groupEmployees.Use(limit)
	}
	{
		groupEmployees.GET("", employeeHandler.List)      // 完整组织层级
		groupEmployees.GET("/:name", employeeHandler.Get) // 员工的上级链（query: levels）
		groupEmployees.POST("", employeeHandler.Create)   // 整体替换员工关系
	}

	return r, nil
}
