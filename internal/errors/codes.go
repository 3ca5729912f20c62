// Package errors provides structured error handling with machine-readable codes.
package errors

import (
	stderrors "errors"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Identity errors
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeAccountDeactivated Code = "ACCOUNT_DEACTIVATED"
	CodeEmailNotVerified   Code = "EMAIL_NOT_VERIFIED"
	CodeDuplicateUsername  Code = "DUPLICATE_USERNAME"
	CodeDuplicateEmail     Code = "DUPLICATE_EMAIL"

	// Entity errors
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Synchronization errors
	CodeSyncRejected Code = "SYNC_REJECTED"

	// Persistence errors
	CodeStorageCorrupt Code = "STORAGE_CORRUPT"
)

type codedError struct {
	code Code
	err  error
}

func (e *codedError) Error() string {
	return e.err.Error()
}

func (e *codedError) Unwrap() error {
	return e.err
}

// WithCode attaches a machine-readable code to err.
func WithCode(err error, code Code) error {
	if err == nil {
		return nil
	}
	return &codedError{code: code, err: err}
}

// New constructs a coded error from a message.
func New(code Code, message string) error {
	return &codedError{code: code, err: stderrors.New(message)}
}

// CodeOf returns the machine-readable code attached to err, walking the
// unwrap chain. Errors without a code report CodeUnknown.
func CodeOf(err error) Code {
	for err != nil {
		var coded *codedError
		if stderrors.As(err, &coded) {
			return coded.code
		}
		err = stderrors.Unwrap(err)
	}
	return CodeUnknown
}
