package state

// Asset is a lightweight handle for an asset held by an account or defined
// in a domain. Quantity semantics are carried by the instructions that
// create and move assets, not stored on the asset itself.
type Asset struct {
	id ID
}

// NewAsset will create an asset with the provided id.
func NewAsset(id ID) *Asset {
	return &Asset{
		id: id,
	}
}

// ID will return the id of the asset.
func (a *Asset) ID() ID {
	return a.id
}
