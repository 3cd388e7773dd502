// internal/common/errors/handler.go
package errors

import (
	"bd-admin-hierarchy/internal/common/logger"
)

// ErrorHandler turns a fatal run error into a log entry and an exit status.
type ErrorHandler struct {
	logger logger.Logger
}

func NewErrorHandler(log logger.Logger) *ErrorHandler {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &ErrorHandler{logger: log}
}

// HandleFatal logs err and returns the exit code the process should use.
func (h *ErrorHandler) HandleFatal(err error) int {
	if err == nil {
		return 0
	}
	stdErr := AsStandardError(err)

	fields := map[string]interface{}{
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"retryable":     stdErr.Retryable,
		"errorCategory": GetErrorCategory(stdErr.Code),
		"timestamp":     stdErr.Timestamp,
	}
	for k, v := range stdErr.Metadata {
		fields[k] = v
	}

	log := h.logger
	if cause := stdErr.Unwrap(); cause != nil {
		log = log.WithError(cause)
	}
	log.Error("Run failed", fields)
	return ExitCode(stdErr)
}
