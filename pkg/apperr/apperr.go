package apperr

import (
	"errors"
	"strings"
)

// Kind classifies recoverable application errors so the HTTP layer
// can map them to responses in one place.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindSequence
	KindInvalidCode
	KindExpired
	KindMismatch
	KindValidation
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
	Reasons []string // populated for KindValidation
	Err     error    // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if len(e.Reasons) > 0 {
		return e.Message + ": " + strings.Join(e.Reasons, "; ")
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ==================== CONSTRUCTORS ====================

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewSequence(message string) *Error {
	return &Error{Kind: KindSequence, Message: message}
}

func NewInvalidCode(message string) *Error {
	return &Error{Kind: KindInvalidCode, Message: message}
}

func NewExpired(message string) *Error {
	return &Error{Kind: KindExpired, Message: message}
}

func NewMismatch(message string) *Error {
	return &Error{Kind: KindMismatch, Message: message}
}

func NewValidation(message string, reasons []string) *Error {
	return &Error{Kind: KindValidation, Message: message, Reasons: reasons}
}

func NewInternal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// ==================== INSPECTION ====================

// KindOf returns the Kind of err, or KindUnknown for plain errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// ReasonsOf returns validation sub-reasons when present.
func ReasonsOf(err error) []string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Reasons
	}
	return nil
}
