package lis

import (
	"fmt"

	"github.com/256dpi/fpack"

	"ledgercore/state"
)

// TransferAsset moves an asset from a source account to a destination
// account. The destination must already exist; accounts are never created
// implicitly. All preconditions are checked before any mutation, a failed
// transfer leaves the world untouched.
type TransferAsset struct {
	// The source account.
	Source state.ID

	// The destination account.
	Destination state.ID

	// The transferred asset.
	Asset state.ID

	// A free-form description of the transfer.
	Description string

	// The amount transferred. Not subtracted from a balance.
	Amount uint64
}

// Opcode implements the Contract interface.
func (t *TransferAsset) Opcode() Opcode {
	return OpTransferAsset
}

// Execute implements the Instruction interface.
func (t *TransferAsset) Execute(world *state.World) error {
	// get source
	source, ok := world.Account(t.Source)
	if !ok {
		return &NotFoundError{Entity: "account", ID: t.Source}
	}

	// get destination
	destination, ok := world.Account(t.Destination)
	if !ok {
		return &NotFoundError{Entity: "account", ID: t.Destination}
	}

	// take asset
	asset, ok := source.Take(t.Asset)
	if !ok {
		return &NotHeldError{Account: t.Source, Asset: t.Asset}
	}

	// place asset
	destination.Put(asset)

	return nil
}

// Relations implements the Property interface.
func (t *TransferAsset) Relations() []Relation {
	return []Relation{
		{Kind: GoingTo, Account: t.Destination},
		{Kind: OwnedBy, Account: t.Source},
	}
}

// Assets implements the Inventory interface.
func (t *TransferAsset) Assets() []state.ID {
	return []state.ID{t.Asset}
}

// Encode implements the Contract interface.
func (t *TransferAsset) Encode() ([]byte, error) {
	return encode(func(enc *fpack.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode accounts and asset
		encodeID(enc, t.Source)
		encodeID(enc, t.Destination)
		encodeID(enc, t.Asset)

		// encode description
		enc.FixString(t.Description, 2)

		// encode amount
		enc.Uint64(t.Amount)

		return nil
	})
}

// Decode implements the Contract interface.
func (t *TransferAsset) Decode(bytes []byte) error {
	return decode(bytes, func(dec *fpack.Decoder) error {
		// decode version
		var version uint8
		version = dec.Uint8()
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode accounts and asset
		decodeID(dec, &t.Source)
		decodeID(dec, &t.Destination)
		decodeID(dec, &t.Asset)

		// decode description
		t.Description = dec.FixString(2, true)

		// decode amount
		t.Amount = dec.Uint64()

		return nil
	})
}

func (t *TransferAsset) isContract() {}
