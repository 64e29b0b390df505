package lis

import (
	"fmt"

	"github.com/256dpi/fpack"

	"ledgercore/state"
)

// AddSignatory attaches a public key to an account. Execution semantics are
// not implemented yet; the variant exists for wire compatibility and is
// dispatched as unimplemented.
type AddSignatory struct {
	// The target account.
	Account state.ID

	// The attached public key.
	PublicKey []byte
}

// Opcode implements the Contract interface.
func (a *AddSignatory) Opcode() Opcode {
	return OpAddSignatory
}

// Encode implements the Contract interface.
func (a *AddSignatory) Encode() ([]byte, error) {
	return encode(func(enc *fpack.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode account
		encodeID(enc, a.Account)

		// encode public key
		enc.FixBytes(a.PublicKey, 2)

		return nil
	})
}

// Decode implements the Contract interface.
func (a *AddSignatory) Decode(bytes []byte) error {
	return decode(bytes, func(dec *fpack.Decoder) error {
		// decode version
		var version uint8
		version = dec.Uint8()
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode account
		decodeID(dec, &a.Account)

		// decode public key
		var key []byte
		key = dec.FixBytes(2, true)
		if len(key) > 0 {
			a.PublicKey = key
		}

		return nil
	})
}

func (a *AddSignatory) isContract() {}
