package models

import (
	"errors"
	"fmt"
)

var ErrEmptyEmail = errors.New("email cannot be empty")

var ErrAgentNotFound = errors.New("agent not found")

// Store operations reported in StoreError.Op
const (
	StoreOpConnect = "connect"
	StoreOpQuery   = "query"
	StoreOpUpdate  = "update"
)

// StoreError wraps any failure talking to the document store: network,
// authentication, permissions or malformed responses.
type StoreError struct {
	Op  string
	Err error
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{
		Op:  op,
		Err: err,
	}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
