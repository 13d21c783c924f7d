package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一错误响应体
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// Success 200 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Item 单条资源响应
func Item(c *gin.Context, status int, item interface{}) {
	c.JSON(status, gin.H{"item": item})
}

// Items 资源列表响应
func Items(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// NoContent 204 空响应
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest 400 响应，校验失败时附带全部违规项
func BadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Details: details})
}

// Unauthorized 401 响应
func Unauthorized(c *gin.Context, message ...string) {
	msg := "未登录或令牌失效"
	if len(message) > 0 {
		msg = message[0]
	}
	c.JSON(http.StatusUnauthorized, ErrorResponse{Error: msg})
}

// NotFound 404 响应
func NotFound(c *gin.Context, message ...string) {
	msg := "资源不存在"
	if len(message) > 0 {
		msg = message[0]
	}
	c.JSON(http.StatusNotFound, ErrorResponse{Error: msg})
}

// TooManyRequests 429 响应
func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: message})
}

// InternalError 500 响应，仅返回顶层信息，细节由服务端日志记录
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "服务器内部错误"})
}
