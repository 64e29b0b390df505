package lis

import (
	"fmt"

	"github.com/256dpi/fpack"

	"ledgercore/state"
)

// Opcode identifies a contract variant on the wire. Assignments are stable
// once published; changing them breaks cross-version decoding.
type Opcode uint8

// The available opcodes.
const (
	OpAddSignatory Opcode = iota + 1
	OpAppendRole
	OpCreateAccount
	OpCreateRole
	OpAddAssetQuantity
	OpTransferAsset
	OpCreateAsset
	OpCreateDomain
	OpAddPeer
)

// String implements the fmt.Stringer interface.
func (o Opcode) String() string {
	switch o {
	case OpAddSignatory:
		return "AddSignatory"
	case OpAppendRole:
		return "AppendRole"
	case OpCreateAccount:
		return "CreateAccount"
	case OpCreateRole:
		return "CreateRole"
	case OpAddAssetQuantity:
		return "AddAssetQuantity"
	case OpTransferAsset:
		return "TransferAsset"
	case OpCreateAsset:
		return "CreateAsset"
	case OpCreateDomain:
		return "CreateDomain"
	case OpAddPeer:
		return "AddPeer"
	}

	return fmt.Sprintf("Opcode(%d)", uint8(o))
}

// Contract is the closed union over all instruction variants and the unit of
// wire transfer and dispatch. A contract is immutable once constructed;
// execution only ever mutates the world.
type Contract interface {
	// Opcode returns the stable variant tag.
	Opcode() Opcode

	// Encode returns the canonical binary encoding of the payload.
	Encode() ([]byte, error)

	// Decode replaces the payload with the decoded bytes.
	Decode(bytes []byte) error

	isContract()
}

// Build will return an empty contract for the provided opcode.
func Build(opcode Opcode) (Contract, bool) {
	switch opcode {
	case OpAddSignatory:
		return &AddSignatory{}, true
	case OpAppendRole:
		return &AppendRole{}, true
	case OpCreateAccount:
		return &CreateAccount{}, true
	case OpCreateRole:
		return &CreateRole{}, true
	case OpAddAssetQuantity:
		return &AddAssetQuantity{}, true
	case OpTransferAsset:
		return &TransferAsset{}, true
	case OpCreateAsset:
		return &CreateAsset{}, true
	case OpCreateDomain:
		return &CreateDomain{}, true
	case OpAddPeer:
		return &AddPeer{}, true
	}

	return nil, false
}

// Opcodes will return all known opcodes in stable order.
func Opcodes() []Opcode {
	return []Opcode{
		OpAddSignatory, OpAppendRole, OpCreateAccount, OpCreateRole,
		OpAddAssetQuantity, OpTransferAsset, OpCreateAsset, OpCreateDomain,
		OpAddPeer,
	}
}

// EncodeContract will encode the provided contract including its variant tag
// so that it can be decoded without external context.
func EncodeContract(contract Contract) ([]byte, error) {
	// encode payload
	payload, err := contract.Encode()
	if err != nil {
		return nil, err
	}

	return encode(func(enc *fpack.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode opcode
		enc.Uint8(uint8(contract.Opcode()))

		// encode payload
		enc.FixBytes(payload, 4)

		return nil
	})
}

// DecodeContract will decode a contract from the provided bytes. Malformed
// bytes yield a DecodeError and never a partial contract.
func DecodeContract(bytes []byte) (Contract, error) {
	// decode frame
	var opcode uint8
	var payload []byte
	err := fpack.Decode(bytes, func(dec *fpack.Decoder) error {
		// decode version
		var version uint8
		version = dec.Uint8()
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode opcode
		opcode = dec.Uint8()

		// decode payload
		payload = dec.FixBytes(4, false)

		return nil
	})
	if err != nil {
		return nil, &DecodeError{Cause: err}
	}

	// build contract
	contract, ok := Build(Opcode(opcode))
	if !ok {
		return nil, &DecodeError{Cause: fmt.Errorf("unknown opcode: %d", opcode)}
	}

	// decode payload
	err = contract.Decode(payload)
	if err != nil {
		return nil, err
	}

	return contract, nil
}

func encode(fn func(enc *fpack.Encoder) error) ([]byte, error) {
	// encode without borrowing to return an owned buffer
	buf, _, err := fpack.Encode(nil, fn)
	if err != nil {
		return nil, err
	}

	return buf, nil
}

func decode(bytes []byte, fn func(dec *fpack.Decoder) error) error {
	// decode and surface failures as typed errors
	err := fpack.Decode(bytes, fn)
	if err != nil {
		return &DecodeError{Cause: err}
	}

	return nil
}

func encodeID(enc *fpack.Encoder, id state.ID) {
	enc.FixString(id.Name, 2)
	enc.FixString(id.Domain, 2)
}

func decodeID(dec *fpack.Decoder, id *state.ID) {
	id.Name = dec.FixString(2, true)
	id.Domain = dec.FixString(2, true)
}
