package lis

import (
	"fmt"

	"github.com/256dpi/fpack"

	"ledgercore/state"
)

// CreateDomain registers a new named namespace in the world. Domains own
// accounts and asset definitions and are never created implicitly.
type CreateDomain struct {
	// The name of the domain.
	Name string
}

// Opcode implements the Contract interface.
func (c *CreateDomain) Opcode() Opcode {
	return OpCreateDomain
}

// Execute implements the Instruction interface.
func (c *CreateDomain) Execute(world *state.World) error {
	// register domain
	if !world.AddDomain(state.NewDomain(c.Name)) {
		return &ExistsError{Entity: "domain", ID: state.DomainID(c.Name)}
	}

	return nil
}

// Encode implements the Contract interface.
func (c *CreateDomain) Encode() ([]byte, error) {
	return encode(func(enc *fpack.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode name
		enc.FixString(c.Name, 2)

		return nil
	})
}

// Decode implements the Contract interface.
func (c *CreateDomain) Decode(bytes []byte) error {
	return decode(bytes, func(dec *fpack.Decoder) error {
		// decode version
		var version uint8
		version = dec.Uint8()
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode name
		c.Name = dec.FixString(2, true)

		return nil
	})
}

func (c *CreateDomain) isContract() {}
