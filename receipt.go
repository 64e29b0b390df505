package ledgercore

import (
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Receipt reports the outcome of a single applied contract. Receipts are
// handed to callers and subscribers for audit logs and block inclusion; the
// core does not persist them.
type Receipt struct {
	// A unique id for this application.
	ID uuid.UUID `json:"id"`

	// The position in the total order of applied contracts. Zero for
	// contracts that failed to decode.
	Sequence uint64 `json:"sequence"`

	// The name of the instruction variant.
	Instruction string `json:"instruction,omitempty"`

	// The time of application.
	AppliedAt time.Time `json:"applied_at"`

	// Whether the instruction applied successfully.
	Success bool `json:"success"`

	// The failure reported by execution or decoding.
	Error string `json:"error,omitempty"`
}

func newReceipt(sequence uint64, instruction string, err error) Receipt {
	// prepare receipt
	receipt := Receipt{
		ID:          uuid.New(),
		Sequence:    sequence,
		Instruction: instruction,
		AppliedAt:   time.Now().UTC(),
		Success:     err == nil,
	}

	// set error
	if err != nil {
		receipt.Error = err.Error()
	}

	return receipt
}

// JSON will return the JSON representation of the receipt.
func (r Receipt) JSON() ([]byte, error) {
	return json.Marshal(r)
}
