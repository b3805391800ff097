package cerror

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewError(httpStatusCode int, detail string, logFields ...zap.Field) *CustomError {
	return &CustomError{
		HttpStatusCode: httpStatusCode,
		Detail:         detail,
		LogSeverity:    zapcore.ErrorLevel,
		LogFields:      logFields,
	}
}

func (cerr *CustomError) SetSeverity(severity zapcore.Level) *CustomError {
	cerr.LogSeverity = severity
	return cerr
}
