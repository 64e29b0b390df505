package state

// Peer represents a network participant, identified by its address. The
// core only registers peers; discovery and transport are handled by
// collaborators.
type Peer struct {
	address string
}

// NewPeer will create a peer with the provided address.
func NewPeer(address string) *Peer {
	return &Peer{
		address: address,
	}
}

// Address will return the address of the peer.
func (p *Peer) Address() string {
	return p.address
}
