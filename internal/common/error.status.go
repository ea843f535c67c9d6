package common

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// Response messages.
const (
	MsgNotFound        = "resource not found"
	MsgValidationError = "invalid data"
	MsgInvalidFormat   = "malformed request body"
	MsgInvalidID       = "invalid id"
	MsgInternalError   = "internal server error"
	MsgDatabaseError   = "database error"
	MsgDuplicate       = "already exists"
	MsgDeleted         = "deleted successfully"
)

// ErrorCode classifies an error independently of its message.
type ErrorCode struct {
	Code        string
	Category    string
	SubCategory string
	Description string
}

var (
	ErrCodeInternalServer = ErrorCode{Code: "SYS_001", Category: "System", SubCategory: "Internal", Description: "internal failure"}

	ErrCodeValidationInput  = ErrorCode{Code: "VAL_001", Category: "Validation", SubCategory: "Input", Description: "field constraint violated"}
	ErrCodeValidationFormat = ErrorCode{Code: "VAL_002", Category: "Validation", SubCategory: "Format", Description: "request body cannot be decoded"}
	ErrCodeValidationID     = ErrorCode{Code: "VAL_003", Category: "Validation", SubCategory: "Identifier", Description: "malformed document id"}

	ErrCodeDatabaseConnection = ErrorCode{Code: "DB_001", Category: "Database", SubCategory: "Connection", Description: "database unreachable"}
	ErrCodeDatabaseQuery      = ErrorCode{Code: "DB_002", Category: "Database", SubCategory: "Query", Description: "query failed"}
	ErrCodeNotFound           = ErrorCode{Code: "DB_003", Category: "Database", SubCategory: "NotFound", Description: "document not found"}
	ErrCodeDuplicate          = ErrorCode{Code: "DB_004", Category: "Database", SubCategory: "Duplicate", Description: "unique index violated"}
	ErrCodeTransaction        = ErrorCode{Code: "DB_005", Category: "Database", SubCategory: "Transaction", Description: "transaction aborted"}

	ErrCodeBusinessState     = ErrorCode{Code: "BIZ_001", Category: "Business", SubCategory: "State", Description: "entity in an unexpected state"}
	ErrCodeBusinessOperation = ErrorCode{Code: "BIZ_002", Category: "Business", SubCategory: "Operation", Description: "operation not allowed"}
)

// Error is the error type every layer returns. Fields carries the
// field->message map rendered for 400 responses.
type Error struct {
	Code       ErrorCode
	Message    string
	StatusCode int
	Details    any
	Fields     map[string]string
}

func (e *Error) Error() string {
	if cause, ok := e.Details.(error); ok && cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, cause)
	}
	return e.Message
}

// Unwrap exposes a wrapped driver error stored in Details.
func (e *Error) Unwrap() error {
	if cause, ok := e.Details.(error); ok {
		return cause
	}
	return nil
}

// Is matches on the error code, so errors.Is(err, ErrNotFound) holds for
// any not-found error whatever its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code.Code == t.Code.Code
}

func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

var (
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, MsgInvalidFormat, http.StatusBadRequest, nil)
	ErrInvalidID     = NewError(ErrCodeValidationID, MsgInvalidID, http.StatusBadRequest, nil)
	ErrValidation    = NewError(ErrCodeValidationInput, MsgValidationError, http.StatusBadRequest, nil)

	ErrNotFound    = NewError(ErrCodeNotFound, MsgNotFound, http.StatusNotFound, nil)
	ErrDuplicate   = NewError(ErrCodeDuplicate, MsgDuplicate, http.StatusBadRequest, nil)
	ErrTransaction = NewError(ErrCodeTransaction, "transaction failed", http.StatusInternalServerError, nil)
	ErrDatabase    = NewError(ErrCodeDatabaseQuery, MsgDatabaseError, http.StatusInternalServerError, nil)
	ErrConnection  = NewError(ErrCodeDatabaseConnection, "database connection failed", http.StatusInternalServerError, nil)

	ErrInvalidState     = NewError(ErrCodeBusinessState, "invalid state", http.StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "invalid operation", http.StatusBadRequest, nil)
)

// NotFound returns a not-found error naming the entity.
func NotFound(entity string) error {
	return NewError(ErrCodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound, nil)
}

// FieldErrors returns a 400 validation error with the given field messages.
func FieldErrors(fields map[string]string) error {
	return &Error{
		Code:       ErrCodeValidationInput,
		Message:    MsgValidationError,
		StatusCode: http.StatusBadRequest,
		Fields:     fields,
	}
}

// FieldError is FieldErrors for a single field.
func FieldError(field, message string) error {
	return FieldErrors(map[string]string{field: message})
}

// InvalidID reports a path or body id that is not an ObjectID.
func InvalidID(field string) error {
	return &Error{
		Code:       ErrCodeValidationID,
		Message:    MsgInvalidID,
		StatusCode: http.StatusBadRequest,
		Fields:     map[string]string{field: fmt.Sprintf("%s must be a valid ObjectID", field)},
	}
}

var (
	dupKeyFieldRe = regexp.MustCompile(`dup key: \{ ?"?([A-Za-z0-9_.]+)"?\s*:`)
	dupIndexRe    = regexp.MustCompile(`index: ([A-Za-z0-9_.]+?)_(?:unique|\d+)`)
)

// DuplicateKeyField extracts the offending field from an E11000 message.
func DuplicateKeyField(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if m := dupKeyFieldRe.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	if m := dupIndexRe.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	return ""
}

// ConvertMongoError maps driver errors onto *Error. Errors that are already
// *Error pass through untouched.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	if mongo.IsDuplicateKeyError(err) {
		field := DuplicateKeyField(err)
		if field == "" {
			field = "document"
		}
		return &Error{
			Code:       ErrCodeDuplicate,
			Message:    MsgDuplicate,
			StatusCode: http.StatusBadRequest,
			Details:    err,
			Fields:     map[string]string{field: fmt.Sprintf("%s %s", field, MsgDuplicate)},
		}
	}

	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return NewError(ErrCodeDatabaseConnection, "database unavailable", http.StatusInternalServerError, err)
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.HasErrorLabel("TransientTransactionError") {
		return NewError(ErrCodeTransaction, "transaction failed", http.StatusInternalServerError, err)
	}

	return NewError(ErrCodeDatabaseQuery, MsgDatabaseError, http.StatusInternalServerError, err)
}

// StatusOf returns the HTTP status carried by err, 500 otherwise.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.StatusCode != 0 {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// IsClientError reports whether err should be shown to the caller as is.
func IsClientError(err error) bool {
	status := StatusOf(err)
	return status >= 400 && status < 500
}

// joinPath trims the root struct name off a validator namespace.
func joinPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
