package errors

import (
	stderrors "errors"
)

// Logger 是错误处理器需要的最小日志接口
type Logger interface {
	Errorw(message string, fields map[string]interface{})
}

// DefaultErrorHandler 默认错误处理器实现
type DefaultErrorHandler struct {
	logger Logger
}

// NewErrorHandler 创建使用指定日志器的错误处理器
func NewErrorHandler(logger Logger) *DefaultErrorHandler {
	return &DefaultErrorHandler{logger: logger}
}

// SetLogger 替换处理器使用的日志器
func (h *DefaultErrorHandler) SetLogger(logger Logger) {
	h.logger = logger
}

// HandleError 记录错误
func (h *DefaultErrorHandler) HandleError(err error) {
	if err == nil || h.logger == nil {
		return
	}

	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		appErr = WrapError(ErrCodeInternalErr, "未知错误", err)
	}

	fields := map[string]interface{}{
		"error_code": appErr.Code,
		"error":      appErr.Message,
	}
	if appErr.Details != "" {
		fields["details"] = appErr.Details
	}
	h.logger.Errorw("命令执行失败", fields)
}

// GetUserFriendlyMessage 获取用户友好的错误消息
func (h *DefaultErrorHandler) GetUserFriendlyMessage(err error) string {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return "Se ha producido un error inesperado"
	}

	switch appErr.Code {
	case ErrCodeInternalErr:
		return "Error interno, contacte con soporte técnico"
	case ErrCodeInitializationFailed:
		return "No se pudo inicializar la aplicación, revise la configuración"
	case ErrCodeNotFound:
		if appErr.Details != "" {
			return "El tramo indicado no existe: " + appErr.Details
		}
		return "El tramo indicado no existe"
	case ErrCodeInvalidParam:
		return "Parámetro no válido: " + appErr.Message

	case ErrCodeConfigNotFound, ErrCodeConfigInvalid, ErrCodeConfigParseFailed:
		return "Error en el fichero de configuración: " + appErr.Message

	case ErrCodeRenderFailed:
		return "No se pudo generar el informe"

	default:
		return appErr.Message
	}
}

// 默认错误处理器实例
var DefaultHandler = &DefaultErrorHandler{}

// HandleError 处理错误
func HandleError(err error) {
	DefaultHandler.HandleError(err)
}

// GetUserFriendlyMessage 获取用户友好的错误消息
func GetUserFriendlyMessage(err error) string {
	return DefaultHandler.GetUserFriendlyMessage(err)
}
