package errors

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"bd-admin-hierarchy/internal/common/logger"
)

func TestConstructors_AreFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      *StandardError
		code     ErrorCode
		category string
		exit     int
	}{
		{"file not found", NewFileNotFoundError("a.json", os.ErrNotExist), ErrCodeFileNotFound, "INPUT", 3},
		{"read failed", NewFileReadFailedError("a.json", fmt.Errorf("boom")), ErrCodeFileReadFailed, "INPUT", 3},
		{"parse", NewParseError("a.json", "not an array", nil), ErrCodeParseError, "INPUT", 3},
		{"field missing", NewFieldMissingError("upazilas", 2, "bn_name"), ErrCodeFieldMissing, "TRANSFORM", 4},
		{"type conversion", NewTypeConversionError("divisions", 0, "id", "x", nil), ErrCodeTypeConversion, "TRANSFORM", 4},
		{"index", NewIndexError("thanas"), ErrCodeIndexError, "REPORT", 5},
		{"serialization", NewSerializationFailedError(fmt.Errorf("bad")), ErrCodeSerializationFailed, "OUTPUT", 6},
		{"write", NewWriteFailedError("out.json", fmt.Errorf("denied")), ErrCodeWriteFailed, "OUTPUT", 6},
		{"verification", NewVerificationFailedError("module differs"), ErrCodeVerificationFailed, "OUTPUT", 6},
		{"config", NewConfigInvalidError("inputs.divisions is required", nil), ErrCodeConfigInvalid, "CONFIG", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.False(t, tt.err.Retryable)
			assert.False(t, tt.err.Timestamp.IsZero())
			assert.Equal(t, tt.category, GetErrorCategory(tt.err.Code))
			assert.Equal(t, tt.exit, ExitCode(tt.err))
			assert.Contains(t, tt.err.Error(), string(tt.code))
		})
	}
}

func TestIsCode_FollowsWrapping(t *testing.T) {
	base := NewFieldMissingError("upazilas", 0, "bn_name")
	wrapped := fmt.Errorf("transform upazilas: %w", base)

	assert.True(t, IsCode(wrapped, ErrCodeFieldMissing))
	assert.False(t, IsCode(wrapped, ErrCodeParseError))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrCodeFieldMissing))
}

func TestUnwrap_ExposesCause(t *testing.T) {
	err := NewFileNotFoundError("missing.json", os.ErrNotExist)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAsStandardError_NormalizesPlainErrors(t *testing.T) {
	assert.Nil(t, AsStandardError(nil))

	stdErr := AsStandardError(fmt.Errorf("something odd"))
	require.NotNil(t, stdErr)
	assert.Equal(t, ErrCodeInternal, stdErr.Code)
	assert.Equal(t, "something odd", stdErr.Details)
	assert.Equal(t, 1, ExitCode(stdErr))
}

func TestExitCode_NilIsSuccess(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
}

func TestErrorHandler_HandleFatal(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := NewErrorHandler(logger.NewZapAdapter(zap.New(core)))

	code := h.HandleFatal(fmt.Errorf("load: %w", NewFileNotFoundError("divisions.json", os.ErrNotExist)))
	assert.Equal(t, 3, code)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Run failed", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "FILE_NOT_FOUND", fields["errorCode"])
	assert.Equal(t, "INPUT", fields["errorCategory"])
	assert.Equal(t, "divisions.json", fields["path"])
	assert.Equal(t, os.ErrNotExist.Error(), fields["error"])
}

func TestErrorHandler_HandleFatalWithoutCause(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := NewErrorHandler(logger.NewZapAdapter(zap.New(core)))

	assert.Equal(t, 5, h.HandleFatal(NewIndexError("thanas")))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), "error")
}

func TestErrorHandler_HandleFatalNil(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	assert.Equal(t, 0, NewErrorHandler(logger.NewZapAdapter(zap.New(core))).HandleFatal(nil))
	assert.Zero(t, logs.Len())
}

func TestErrorHandler_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, 6, NewErrorHandler(nil).HandleFatal(NewWriteFailedError("out.json", os.ErrPermission)))
	})
}
