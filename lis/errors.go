package lis

import (
	"fmt"

	"ledgercore/state"
)

// NotFoundError is returned when a referenced entity does not exist. The
// failed instruction has no effect on the world.
type NotFoundError struct {
	// The kind of the missing entity.
	Entity string

	// The id of the missing entity.
	ID state.ID
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s: not found", e.Entity, e.ID)
}

// ExistsError is returned when a creation instruction references an already
// existing entity. Entities are never deleted or overwritten.
type ExistsError struct {
	// The kind of the existing entity.
	Entity string

	// The id of the existing entity.
	ID state.ID
}

// Error implements the error interface.
func (e *ExistsError) Error() string {
	return fmt.Sprintf("%s %s: already exists", e.Entity, e.ID)
}

// NotHeldError is returned when a transfer source does not hold the
// referenced asset.
type NotHeldError struct {
	// The account that lacks the asset.
	Account state.ID

	// The asset that is not held.
	Asset state.ID
}

// Error implements the error interface.
func (e *NotHeldError) Error() string {
	return fmt.Sprintf("asset %s: not held by account %s", e.Asset, e.Account)
}

// UnimplementedError is returned when a contract variant without execution
// semantics is dispatched.
type UnimplementedError struct {
	// The opcode of the dispatched variant.
	Opcode Opcode
}

// Error implements the error interface.
func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%s: instruction not implemented", e.Opcode)
}

// DecodeError is returned when malformed bytes are encountered at the codec
// boundary. No partial object is produced.
type DecodeError struct {
	// The underlying decoding error.
	Cause error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: %s", e.Cause)
}

// Unwrap will return the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}
