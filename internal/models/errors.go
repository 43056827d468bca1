package models

// ErrorType represents different categories of errors in the system
type ErrorType string

const (
	ErrTypeValidation ErrorType = "validation"
	ErrTypeResource   ErrorType = "resource"
	ErrTypeWidget     ErrorType = "widget"
	ErrTypeSystem     ErrorType = "system"
)

// BoardError represents a structured error with type and context
type BoardError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *BoardError) Error() string {
	msg := e.Message
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause of the error
func (e *BoardError) Unwrap() error {
	return e.Cause
}

// NewBoardError creates a new BoardError with the given type and message
func NewBoardError(errType ErrorType, message string) *BoardError {
	return &BoardError{
		Type:    errType,
		Message: message,
	}
}

// NewBoardErrorWithCause creates a new BoardError with an underlying cause
func NewBoardErrorWithCause(errType ErrorType, message string, cause error) *BoardError {
	return &BoardError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// WithDetails attaches extra context to the error
func (e *BoardError) WithDetails(details string) *BoardError {
	e.Details = details
	return e
}
