package cerror

import (
	"go.uber.org/zap/zapcore"
)

type CustomError struct {
	HttpStatusCode int             `json:"-"`
	Detail         string          `json:"detail"`
	LogSeverity    zapcore.Level   `json:"-"`
	LogFields      []zapcore.Field `json:"-"`
}

func (cerr *CustomError) Error() string {
	return cerr.Detail
}
