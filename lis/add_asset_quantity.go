package lis

import (
	"fmt"

	"github.com/256dpi/fpack"

	"ledgercore/state"
)

// AddAssetQuantity places an asset on an existing account, e.g. a claim on a
// commodity like money or gold. The amount is carried for audit and event
// purposes; execution tracks the holding by presence of the asset key, not
// by a running balance.
type AddAssetQuantity struct {
	// The asset to place.
	Asset state.ID

	// The receiving account.
	Account state.ID

	// The amount added. Not summed into a balance.
	Amount uint64
}

// Opcode implements the Contract interface.
func (a *AddAssetQuantity) Opcode() Opcode {
	return OpAddAssetQuantity
}

// Execute implements the Instruction interface.
func (a *AddAssetQuantity) Execute(world *state.World) error {
	// get account
	account, ok := world.Account(a.Account)
	if !ok {
		return &NotFoundError{Entity: "account", ID: a.Account}
	}

	// place asset
	account.Put(state.NewAsset(a.Asset))

	return nil
}

// Encode implements the Contract interface.
func (a *AddAssetQuantity) Encode() ([]byte, error) {
	return encode(func(enc *fpack.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode asset and account
		encodeID(enc, a.Asset)
		encodeID(enc, a.Account)

		// encode amount
		enc.Uint64(a.Amount)

		return nil
	})
}

// Decode implements the Contract interface.
func (a *AddAssetQuantity) Decode(bytes []byte) error {
	return decode(bytes, func(dec *fpack.Decoder) error {
		// decode version
		var version uint8
		version = dec.Uint8()
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode asset and account
		decodeID(dec, &a.Asset)
		decodeID(dec, &a.Account)

		// decode amount
		a.Amount = dec.Uint64()

		return nil
	})
}

func (a *AddAssetQuantity) isContract() {}
