// Package errorx defines the closed set of failures the wallet API reports.
package errorx

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindInvalidRequest            Kind = "InvalidRequest"
	KindInvalidAddress            Kind = "InvalidAddress"
	KindInvalidPrivateKey         Kind = "InvalidPrivateKey"
	KindInvalidDestinationAddress Kind = "InvalidDestinationAddress"
	KindInvalidAmount             Kind = "InvalidAmount"
	KindInvalidTransactionHash    Kind = "InvalidTransactionHash"
	KindInsufficientBalance       Kind = "InsufficientBalance"
	KindProvider                  Kind = "ProviderError"
	KindExplorer                  Kind = "ExplorerError"
	KindInternal                  Kind = "InternalError"
)

// Error is a classified failure. Err, when set, is the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// Provider wraps an RPC failure; op is the verb that failed, e.g. "fetch balance".
func Provider(op string, err error) *Error {
	return &Error{Kind: KindProvider, Message: "failed to " + op, Err: err}
}

func Explorer(msg string, err error) *Error {
	return &Error{Kind: KindExplorer, Message: msg, Err: err}
}

// InsufficientBalanceError carries both amounts already rendered in display units.
type InsufficientBalanceError struct {
	Current   string
	Requested string
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("Insufficient balance. Current: %s, Requested: %s", e.Current, e.Requested)
}

// KindOf reports the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var ib *InsufficientBalanceError
	if errors.As(err, &ib) {
		return KindInsufficientBalance
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps a kind to the status code returned to API callers.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindInvalidRequest,
		KindInvalidAddress,
		KindInvalidPrivateKey,
		KindInvalidDestinationAddress,
		KindInvalidAmount,
		KindInvalidTransactionHash,
		KindInsufficientBalance:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
