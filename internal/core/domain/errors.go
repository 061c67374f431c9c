package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
)

// Event errors
var (
	ErrEventNotFound  = errors.New("event not found")
	ErrEventCancelled = errors.New("event is cancelled")
	ErrEventEnded     = errors.New("event has ended")
)

// Finance errors
var (
	ErrBudgetNotFound          = errors.New("budget not found")
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrReceiptNotFound         = errors.New("receipt not found")
	ErrTransactionNotPending   = errors.New("transaction is no longer pending")
	ErrInvalidTransactionState = errors.New("invalid transaction status")
)

// Year session errors
var (
	ErrYearSessionNotFound = errors.New("year session not found")
)
