// Package ledgercore implements the instruction execution core of a
// distributed ledger: a closed instruction vocabulary with a canonical
// binary encoding and a deterministic application procedure against an
// in-memory world. Collaborators feed validated, ordered contracts into an
// applier and read back per-instruction receipts.
package ledgercore

import (
	"log/slog"
	"sync"

	"ledgercore/lis"
	"ledgercore/state"
)

// ApplierConfig is used to configure an applier.
type ApplierConfig struct {
	// The logger used to report application outcomes. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// The metrics updated on application. Optional.
	Metrics *Metrics
}

// Applier applies contracts to a world, one at a time, in the total order
// established by the caller. The world is owned by the applier for writing;
// concurrent Apply calls are serialized internally. The applier performs no
// reordering, batching or retries.
type Applier struct {
	world  *state.World
	config ApplierConfig

	receivers sync.Map

	head  uint64
	mutex sync.Mutex
}

// NewApplier will create and return an applier for the provided world.
func NewApplier(world *state.World, config ApplierConfig) *Applier {
	// set default
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &Applier{
		world:  world,
		config: config,
	}
}

// Apply will execute the provided contract against the world and return a
// receipt. A failed contract leaves the world untouched and does not affect
// the application of subsequent contracts.
func (a *Applier) Apply(contract lis.Contract) Receipt {
	// acquire mutex
	a.mutex.Lock()

	// invoke contract
	err := lis.Invoke(contract, a.world)

	// increment head
	a.head++
	head := a.head

	// release mutex
	a.mutex.Unlock()

	// build receipt
	receipt := newReceipt(head, contract.Opcode().String(), err)

	// report outcome
	a.finish(receipt)

	return receipt
}

// ApplyAll will apply the provided contracts in order and return all
// receipts. Application continues past failed contracts.
func (a *Applier) ApplyAll(contracts []lis.Contract) []Receipt {
	// apply contracts
	receipts := make([]Receipt, 0, len(contracts))
	for _, contract := range contracts {
		receipts = append(receipts, a.Apply(contract))
	}

	return receipts
}

// ApplyBytes will decode a contract from the provided bytes and apply it. A
// decode failure yields a failed receipt without touching the world.
func (a *Applier) ApplyBytes(bytes []byte) Receipt {
	// decode contract
	contract, err := lis.DecodeContract(bytes)
	if err != nil {
		// count failure
		if a.config.Metrics != nil {
			a.config.Metrics.DecodeFailures.Inc()
		}

		// build receipt
		receipt := newReceipt(0, "", err)

		// log and notify
		a.config.Logger.Warn("contract rejected", "error", receipt.Error)
		a.notify(receipt)

		return receipt
	}

	return a.Apply(contract)
}

// Head will return the sequence of the last applied contract. This value can
// be checked periodically to assess progress.
func (a *Applier) Head() uint64 {
	// get head
	a.mutex.Lock()
	head := a.head
	a.mutex.Unlock()

	return head
}

// Subscribe will subscribe the specified channel to receipts of applied
// contracts. Notifications will be skipped if the specified channel is not
// writable for some reason.
func (a *Applier) Subscribe(receiver chan<- Receipt) {
	a.receivers.Store(receiver, receiver)
}

// Unsubscribe will remove a previously subscribed receiver.
func (a *Applier) Unsubscribe(receiver chan<- Receipt) {
	a.receivers.Delete(receiver)
}

func (a *Applier) finish(receipt Receipt) {
	// log outcome
	if receipt.Success {
		a.config.Logger.Info("contract applied",
			"instruction", receipt.Instruction, "sequence", receipt.Sequence)
	} else {
		a.config.Logger.Warn("contract failed",
			"instruction", receipt.Instruction, "sequence", receipt.Sequence,
			"error", receipt.Error)
	}

	// update metrics
	if a.config.Metrics != nil {
		a.config.Metrics.observe(receipt)
	}

	// notify receivers
	a.notify(receipt)
}

func (a *Applier) notify(receipt Receipt) {
	// send notifications to all receivers and skip full receivers
	a.receivers.Range(func(_, value interface{}) bool {
		select {
		case value.(chan<- Receipt) <- receipt:
		default:
		}

		return true
	})
}
