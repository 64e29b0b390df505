package lis

import (
	"fmt"

	"github.com/256dpi/fpack"

	"ledgercore/state"
)

// AddPeer registers a network participant by address. The core does not
// exercise peers beyond registration; discovery and transport are handled by
// collaborators.
type AddPeer struct {
	// The network address of the peer.
	Address string
}

// Opcode implements the Contract interface.
func (a *AddPeer) Opcode() Opcode {
	return OpAddPeer
}

// Execute implements the Instruction interface.
func (a *AddPeer) Execute(world *state.World) error {
	// register peer
	if !world.AddPeer(state.NewPeer(a.Address)) {
		return &ExistsError{Entity: "peer", ID: state.ID{Name: a.Address}}
	}

	return nil
}

// Encode implements the Contract interface.
func (a *AddPeer) Encode() ([]byte, error) {
	return encode(func(enc *fpack.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode address
		enc.FixString(a.Address, 2)

		return nil
	})
}

// Decode implements the Contract interface.
func (a *AddPeer) Decode(bytes []byte) error {
	return decode(bytes, func(dec *fpack.Decoder) error {
		// decode version
		var version uint8
		version = dec.Uint8()
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode address
		a.Address = dec.FixString(2, true)

		return nil
	})
}

func (a *AddPeer) isContract() {}
