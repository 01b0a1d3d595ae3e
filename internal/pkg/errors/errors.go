package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"strings"
)

// 错误代码常量
const (
	// 系统级错误
	ErrCodeInternalErr          = "INTERNAL_ERROR"        // 内部错误
	ErrCodeInitializationFailed = "INITIALIZATION_FAILED" // 初始化失败
	ErrCodeNotFound             = "NOT_FOUND"             // 资源未找到
	ErrCodeInvalidParam         = "INVALID_PARAM"         // 无效参数

	// 配置错误
	ErrCodeConfigNotFound    = "CONFIG_NOT_FOUND"    // 配置文件未找到
	ErrCodeConfigInvalid     = "CONFIG_INVALID"      // 配置文件无效
	ErrCodeConfigParseFailed = "CONFIG_PARSE_FAILED" // 配置解析失败

	// 输出错误
	ErrCodeRenderFailed = "RENDER_FAILED" // 报告渲染失败
)

// AppError 应用错误结构
type AppError struct {
	Code    string `json:"code"`              // 错误代码
	Message string `json:"message"`           // 错误消息
	Details string `json:"details,omitempty"` // 错误详情
	Cause   error  `json:"-"`                 // 原始错误
	Stack   string `json:"stack,omitempty"`   // 错误堆栈
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回原始错误
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is 按错误代码比较，使 errors.Is 可以匹配同类错误
func (e *AppError) Is(target error) bool {
	if other, ok := target.(*AppError); ok {
		return e.Code == other.Code
	}
	return false
}

// WithDetails 添加错误详情
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// WithStack 添加堆栈信息
func (e *AppError) WithStack() *AppError {
	e.Stack = getStackTrace(3)
	return e
}

// getStackTrace 获取调用堆栈
func getStackTrace(skip int) string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var stack strings.Builder
	for {
		frame, more := frames.Next()
		// 跳过runtime相关的调用栈
		if !strings.Contains(frame.File, "runtime/") {
			fmt.Fprintf(&stack, "%s:%d %s\n", frame.File, frame.Line, frame.Function)
		}
		if !more {
			break
		}
	}
	return stack.String()
}

// Sentinel 返回只带错误代码的哨兵错误，用于 errors.Is 比较
func Sentinel(code string) *AppError {
	return &AppError{Code: code, Message: code}
}

// NewError 创建新的错误
func NewError(code, message string) *AppError {
	err := &AppError{
		Code:    code,
		Message: message,
	}
	return err.WithStack()
}

// NewErrorWithDetails 创建带详情的错误
func NewErrorWithDetails(code, message, details string) *AppError {
	err := &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
	return err.WithStack()
}

// WrapError 包装现有错误
func WrapError(code, message string, cause error) *AppError {
	details := ""
	if cause != nil {
		details = cause.Error()
	}

	err := &AppError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
	return err.WithStack()
}

// IsErrorCode 检查错误链中是否包含指定代码的错误
func IsErrorCode(err error, code string) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetErrorCode 获取错误代码
func GetErrorCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternalErr
}

// GetErrorDetails 获取错误详情
func GetErrorDetails(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Details
	}
	return ""
}
