package state

import (
	"sort"
)

// Account is a named holder of assets within a domain. The holdings map is
// the sole location assets are recorded; there is no separate balance
// ledger. A holding is tracked by presence of the asset key, not by a
// running counter.
type Account struct {
	id     ID
	assets map[ID]*Asset
}

// NewAccount will create an account with the provided id and no holdings.
func NewAccount(id ID) *Account {
	return &Account{
		id:     id,
		assets: map[ID]*Asset{},
	}
}

// ID will return the id of the account.
func (a *Account) ID() ID {
	return a.id
}

// Holds will return whether the account holds the specified asset.
func (a *Account) Holds(id ID) bool {
	_, ok := a.assets[id]
	return ok
}

// Put will insert the provided asset into the account. An already held
// asset with the same id is replaced.
func (a *Account) Put(asset *Asset) {
	a.assets[asset.ID()] = asset
}

// Take will remove and return the specified asset from the account.
func (a *Account) Take(id ID) (*Asset, bool) {
	// get asset
	asset, ok := a.assets[id]
	if !ok {
		return nil, false
	}

	// remove asset
	delete(a.assets, id)

	return asset, true
}

// Size will return the number of held assets.
func (a *Account) Size() int {
	return len(a.assets)
}

// Holdings will return the ids of all held assets in lexicographic order.
func (a *Account) Holdings() []ID {
	// collect ids
	list := make([]ID, 0, len(a.assets))
	for id := range a.assets {
		list = append(list, id)
	}

	// sort ids
	sort.Slice(list, func(i, j int) bool {
		if list[i].Domain != list[j].Domain {
			return list[i].Domain < list[j].Domain
		}
		return list[i].Name < list[j].Name
	})

	return list
}
