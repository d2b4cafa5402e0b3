package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-hierarchy/pkg/errors"
)

// Success 成功响应，直接输出数据本身
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error 错误响应
// 业务错误使用错误码作为HTTP状态码，响应体为错误描述
func Error(c *gin.Context, err error) {
	if appErr, ok := errors.As(err); ok {
		if appErr.Err != nil {
			_ = c.Error(appErr.Err)
		}
		c.String(appErr.Code, appErr.Message)
		return
	}

	// 未知错误
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, errors.ErrInternalError.Message)
}

// ErrorWithDetail 带详细信息的错误响应
func ErrorWithDetail(c *gin.Context, code int, message, detail string) {
	if detail == "" {
		c.String(code, message)
		return
	}
	c.String(code, message+": "+detail)
}
