package lis

import (
	"fmt"

	"github.com/256dpi/fpack"
)

// CreateRole defines a named set of permissions. Execution semantics are not
// implemented yet; the variant exists for wire compatibility and is
// dispatched as unimplemented.
type CreateRole struct {
	// The name of the role.
	Name string

	// The granted permissions.
	Permissions []string
}

// Opcode implements the Contract interface.
func (c *CreateRole) Opcode() Opcode {
	return OpCreateRole
}

// Encode implements the Contract interface.
func (c *CreateRole) Encode() ([]byte, error) {
	return encode(func(enc *fpack.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode name
		enc.FixString(c.Name, 2)

		// encode length
		enc.Uint16(uint16(len(c.Permissions)))

		// encode permissions
		for _, permission := range c.Permissions {
			enc.FixString(permission, 2)
		}

		return nil
	})
}

// Decode implements the Contract interface.
func (c *CreateRole) Decode(bytes []byte) error {
	return decode(bytes, func(dec *fpack.Decoder) error {
		// decode version
		var version uint8
		version = dec.Uint8()
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode name
		c.Name = dec.FixString(2, true)

		// decode length
		var length uint16
		length = dec.Uint16()

		// decode permissions
		if length > 0 {
			c.Permissions = make([]string, length)
			for i := 0; i < int(length); i++ {
				c.Permissions[i] = dec.FixString(2, true)
			}
		}

		return nil
	})
}

func (c *CreateRole) isContract() {}
