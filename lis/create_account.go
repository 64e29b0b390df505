package lis

import (
	"fmt"

	"github.com/256dpi/fpack"

	"ledgercore/state"
)

// CreateAccount registers a new account with an empty holdings map under an
// existing domain.
type CreateAccount struct {
	// The name of the account.
	Name string

	// The name of the owning domain.
	Domain string
}

// Opcode implements the Contract interface.
func (c *CreateAccount) Opcode() Opcode {
	return OpCreateAccount
}

// Execute implements the Instruction interface.
func (c *CreateAccount) Execute(world *state.World) error {
	// get domain
	domain, ok := world.Domain(c.Domain)
	if !ok {
		return &NotFoundError{Entity: "domain", ID: state.DomainID(c.Domain)}
	}

	// register account
	id := state.NewID(c.Name, c.Domain)
	if !domain.AddAccount(state.NewAccount(id)) {
		return &ExistsError{Entity: "account", ID: id}
	}

	return nil
}

// Encode implements the Contract interface.
func (c *CreateAccount) Encode() ([]byte, error) {
	return encode(func(enc *fpack.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode name and domain
		enc.FixString(c.Name, 2)
		enc.FixString(c.Domain, 2)

		return nil
	})
}

// Decode implements the Contract interface.
func (c *CreateAccount) Decode(bytes []byte) error {
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

		return nil
	})
}

func (c *CreateAccount) isContract() {}
