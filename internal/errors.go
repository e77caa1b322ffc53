package internal

import (
	"encoding/json"
	"fmt"
)

type ErrorType string

const (
	ErrorTypeValidation ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"
	ErrorTypeConflict   ErrorType = "CONFLICT"
	ErrorTypeStorage    ErrorType = "STORAGE_ERROR"
	ErrorTypeInternal   ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidDate      ErrorCode = "INVALID_DATE"
	ErrCodeInvalidLeaveType ErrorCode = "INVALID_LEAVE_TYPE"
	ErrCodeInvalidStatus    ErrorCode = "INVALID_STATUS"

	ErrCodeEmployeeNotFound ErrorCode = "EMPLOYEE_NOT_FOUND"
	ErrCodeLeaveNotFound    ErrorCode = "LEAVE_NOT_FOUND"
	ErrCodeAlreadyDecided   ErrorCode = "LEAVE_ALREADY_DECIDED"

	ErrCodeImportInvalid ErrorCode = "IMPORT_INVALID"
	ErrCodeStorageFailed ErrorCode = "STORAGE_FAILED"
)

type AppError struct {
	Type    ErrorType `json:"type"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	return &AppError{Type: e.Type, Code: e.Code, Message: e.Message, Cause: cause}
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{Type: ErrorTypeValidation, Code: code, Message: message}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Code: code, Message: message}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{Type: ErrorTypeConflict, Code: code, Message: message}
}

func NewStorageError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeStorage, Code: ErrCodeStorageFailed, Message: message, Cause: cause}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeInternal, Code: "INTERNAL_ERROR", Message: message, Cause: cause}
}

var (
	ErrEmployeeNotFound    = NewNotFoundError("employee not found", ErrCodeEmployeeNotFound)
	ErrLeaveNotFound       = NewNotFoundError("leave not found", ErrCodeLeaveNotFound)
	ErrLeaveAlreadyDecided = NewConflictError("leave has already been approved or rejected", ErrCodeAlreadyDecided)
	ErrInvalidLeaveStatus  = NewValidationError("status must be either 'approved' or 'rejected'", ErrCodeInvalidStatus)
	ErrImportInvalid       = NewValidationError("import payload is not valid JSON", ErrCodeImportInvalid)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType `json:"type"`
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
	})
}
