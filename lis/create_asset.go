package lis

import (
	"fmt"

	"github.com/256dpi/fpack"

	"ledgercore/state"
)

// CreateAsset registers a new type of asset, unique within a domain. An
// asset is a countable representation of a commodity.
type CreateAsset struct {
	// The name of the asset.
	Name string

	// The name of the owning domain.
	Domain string

	// The number of decimal places. Carried for collaborators; unused by
	// execution.
	Decimals uint8
}

// Opcode implements the Contract interface.
func (c *CreateAsset) Opcode() Opcode {
	return OpCreateAsset
}

// Execute implements the Instruction interface.
func (c *CreateAsset) Execute(world *state.World) error {
	// get domain
	domain, ok := world.Domain(c.Domain)
	if !ok {
		return &NotFoundError{Entity: "domain", ID: state.DomainID(c.Domain)}
	}

	// register definition
	id := state.NewID(c.Name, c.Domain)
	if !domain.AddAsset(state.NewAsset(id)) {
		return &ExistsError{Entity: "asset", ID: id}
	}

	return nil
}

// Encode implements the Contract interface.
func (c *CreateAsset) Encode() ([]byte, error) {
	return encode(func(enc *fpack.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode name and domain
		enc.FixString(c.Name, 2)
		enc.FixString(c.Domain, 2)

		// encode decimals
		enc.Uint8(c.Decimals)

		return nil
	})
}

// Decode implements the Contract interface.
func (c *CreateAsset) Decode(bytes []byte) error {
	return decode(bytes, func(dec *fpack.Decoder) error {
		// decode version
		var version uint8
		version = dec.Uint8()
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode name and domain
		c.Name = dec.FixString(2, true)
		c.Domain = dec.FixString(2, true)

		// decode decimals
		c.Decimals = dec.Uint8()

		return nil
	})
}

func (c *CreateAsset) isContract() {}
