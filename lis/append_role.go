package lis

import (
	"fmt"

	"github.com/256dpi/fpack"

	"ledgercore/state"
)

// AppendRole grants a role to an account. Execution semantics are not
// implemented yet; the variant exists for wire compatibility and is
// dispatched as unimplemented.
type AppendRole struct {
	// The target account.
	Account state.ID

	// The name of the granted role.
	Role string
}

// Opcode implements the Contract interface.
func (a *AppendRole) Opcode() Opcode {
	return OpAppendRole
}

// Encode implements the Contract interface.
func (a *AppendRole) Encode() ([]byte, error) {
	return encode(func(enc *fpack.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode account
		encodeID(enc, a.Account)

		// encode role
		enc.FixString(a.Role, 2)

		return nil
	})
}

// Decode implements the Contract interface.
func (a *AppendRole) Decode(bytes []byte) error {
	return decode(bytes, func(dec *fpack.Decoder) error {
		// decode version
		var version uint8
		version = dec.Uint8()
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode account
		decodeID(dec, &a.Account)

		// decode role
		a.Role = dec.FixString(2, true)

		return nil
	})
}

func (a *AppendRole) isContract() {}
