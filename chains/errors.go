// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chains

import (
	"context"
	"errors"
	"fmt"
)

const (
	ValidationErrorCode           = "ValidationError"
	NotInitializedErrorCode       = "NotInitializedError"
	ContractRevertedCode          = "ContractReverted"
	NetworkErrorCode              = "NetworkError"
	NotFoundErrorCode             = "NotFoundError"
	UnsupportedOperationErrorCode = "UnsupportedOperationError"
	AlreadyWrappedCode            = "AlreadyWrapped"
	UnknownErrorCode              = "UnknownError"
)

// ValidationError is returned when input is rejected before any network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotInitializedError is returned when a connection was never established.
type NotInitializedError struct {
	Component string
}

func (e *NotInitializedError) Error() string {
	return fmt.Sprintf("%s is not initialized", e.Component)
}

// LedgerRejectedError carries the engine result code of a transaction
// the source ledger refused, e.g. tecNO_RESERVE or tefPAST_SEQ.
type LedgerRejectedError struct {
	Code   string
	TxHash string
}

func (e *LedgerRejectedError) Error() string {
	if e.TxHash == "" {
		return fmt.Sprintf("transaction rejected by ledger: %s", e.Code)
	}
	return fmt.Sprintf("transaction %s rejected by ledger: %s", e.TxHash, e.Code)
}

// LedgerRequestError is an error status returned by the ledger node for a request.
type LedgerRequestError struct {
	Code    string
	Message string
}

func (e *LedgerRequestError) Error() string {
	return fmt.Sprintf("ledger request failed: %s (%s)", e.Code, e.Message)
}

type ContractRevertedError struct {
	TxHash string
	Reason string
}

func (e *ContractRevertedError) Error() string {
	if e.TxHash == "" {
		return fmt.Sprintf("contract call reverted: %s", e.Reason)
	}
	return fmt.Sprintf("transaction %s reverted", e.TxHash)
}

// NetworkError wraps transport failures and timeouts.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// AlreadyWrappedError is returned when a source asset already has a pending
// or live mirror token.
type AlreadyWrappedError struct {
	SourceAssetID string
	Status        string
}

func (e *AlreadyWrappedError) Error() string {
	return fmt.Sprintf("asset %s is already %s", e.SourceAssetID, e.Status)
}

type UnsupportedOperationError struct {
	Op      string
	Network string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s is not supported on %s", e.Op, e.Network)
}

// ErrorCode classifies err into the code reported to callers.
// Ledger codes are passed through verbatim.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	var notInitializedErr *NotInitializedError
	var rejectedErr *LedgerRejectedError
	var requestErr *LedgerRequestError
	var revertedErr *ContractRevertedError
	var networkErr *NetworkError
	var notFoundErr *NotFoundError
	var unsupportedErr *UnsupportedOperationError
	var wrappedErr *AlreadyWrappedError
	switch {
	case errors.As(err, &validationErr):
		return ValidationErrorCode
	case errors.As(err, &notInitializedErr):
		return NotInitializedErrorCode
	case errors.As(err, &rejectedErr):
		return rejectedErr.Code
	case errors.As(err, &revertedErr):
		return ContractRevertedCode
	case errors.As(err, &notFoundErr):
		return NotFoundErrorCode
	case errors.As(err, &unsupportedErr):
		return UnsupportedOperationErrorCode
	case errors.As(err, &wrappedErr):
		return AlreadyWrappedCode
	case errors.As(err, &networkErr):
		return NetworkErrorCode
	case errors.As(err, &requestErr):
		return requestErr.Code
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return NetworkErrorCode
	default:
		return UnknownErrorCode
	}
}
