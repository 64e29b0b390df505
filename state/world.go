// Package state implements the entity model and the world aggregate the
// ledger instruction set operates on.
package state

// World is the aggregate root of all ledger entities. Exactly one world
// exists per ledger instance and all instructions execute against the same
// mutable reference. The world is not internally synchronized; writers must
// be serialized by the caller.
type World struct {
	domains map[string]*Domain
	peers   map[string]*Peer
}

// NewWorld will create an empty world.
func NewWorld() *World {
	return &World{
		domains: map[string]*Domain{},
		peers:   map[string]*Peer{},
	}
}

// Domain will look up a domain by name.
func (w *World) Domain(name string) (*Domain, bool) {
	domain, ok := w.domains[name]
	return domain, ok
}

// AddDomain will register the provided domain. It will return false if a
// domain with the same name is already registered.
func (w *World) AddDomain(domain *Domain) bool {
	// check existence
	if _, ok := w.domains[domain.Name()]; ok {
		return false
	}

	// register domain
	w.domains[domain.Name()] = domain

	return true
}

// Account will look up an account by id across all domains.
func (w *World) Account(id ID) (*Account, bool) {
	// get domain
	domain, ok := w.domains[id.Domain]
	if !ok {
		return nil, false
	}

	return domain.Account(id)
}

// Asset will look up an asset definition by id across all domains.
func (w *World) Asset(id ID) (*Asset, bool) {
	// get domain
	domain, ok := w.domains[id.Domain]
	if !ok {
		return nil, false
	}

	return domain.Asset(id)
}

// Peer will look up a peer by address.
func (w *World) Peer(address string) (*Peer, bool) {
	peer, ok := w.peers[address]
	return peer, ok
}

// AddPeer will register the provided peer. It will return false if a peer
// with the same address is already registered.
func (w *World) AddPeer(peer *Peer) bool {
	// check existence
	if _, ok := w.peers[peer.Address()]; ok {
		return false
	}

	// register peer
	w.peers[peer.Address()] = peer

	return true
}

// Holders will return how many accounts across the world hold the specified
// asset.
func (w *World) Holders(id ID) int {
	// count holders
	var count int
	for _, domain := range w.domains {
		for _, account := range domain.accounts {
			if account.Holds(id) {
				count++
			}
		}
	}

	return count
}
