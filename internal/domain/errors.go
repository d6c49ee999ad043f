package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyOrdered = errors.New("already ordered today")
	ErrOrderingClosed = errors.New("ordering is closed")
	ErrSyncInProgress = errors.New("vendor menu sync is already in progress")
	ErrMenuModeLocked = errors.New("menu mode cannot change while there are orders today")
	ErrInvalidCutoff  = errors.New("invalid cutoff time")
	ErrMenuMismatch   = errors.New("menu does not match menu type")
	ErrImportDisabled = errors.New("menu import is not configured")
	ErrInvalidInput   = errors.New("invalid input")
)
