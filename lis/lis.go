// Package lis implements the ledger instruction set: a closed vocabulary of
// state-mutating commands, a canonical binary encoding for each and their
// deterministic execution against a world.
package lis

import (
	"ledgercore/state"
)

// Instruction is the capability implemented by every command with execution
// semantics. Execute requires exclusive access to the world for its duration
// and must leave it consistent: an instruction either fully applies or
// returns an error without effect.
type Instruction interface {
	Execute(world *state.World) error
}

// Property is the capability implemented by commands that reference
// accounts. It allows collaborators to determine which accounts a contract
// touches before executing it.
type Property interface {
	Relations() []Relation
}

// Inventory is the capability implemented by commands that reference assets.
type Inventory interface {
	Assets() []state.ID
}

// RelationKind describes the role an account plays in a contract.
type RelationKind uint8

// The available relation kinds.
const (
	// OwnedBy relates a contract to the account that owns the touched
	// entities, e.g. the source of a transfer.
	OwnedBy RelationKind = iota + 1

	// GoingTo relates a contract to the account that receives the touched
	// entities.
	GoingTo
)

// Relation is a derived fact that a contract references an account in a
// given role.
type Relation struct {
	Kind    RelationKind
	Account state.ID
}

// Invoke will execute the provided contract against the world. Contracts
// without execution semantics yield an UnimplementedError rather than
// silently succeeding.
func Invoke(contract Contract, world *state.World) error {
	// get instruction
	instruction, ok := contract.(Instruction)
	if !ok {
		return &UnimplementedError{Opcode: contract.Opcode()}
	}

	return instruction.Execute(world)
}

// Relations will return the accounts the provided contract touches and in
// which role. An empty result means the variant has not been classified yet,
// not that the contract is known to touch nothing.
func Relations(contract Contract) []Relation {
	// project property
	if property, ok := contract.(Property); ok {
		return property.Relations()
	}

	return nil
}

// Assets will return the assets the provided contract touches. An empty
// result means the variant has not been classified yet.
func Assets(contract Contract) []state.ID {
	// project inventory
	if inventory, ok := contract.(Inventory); ok {
		return inventory.Assets()
	}

	return nil
}
