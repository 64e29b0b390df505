package state

// Domain is a named namespace that owns accounts and asset definitions.
// Domains are created explicitly and never inferred from entity ids.
type Domain struct {
	name     string
	accounts map[ID]*Account
	assets   map[ID]*Asset
}

// NewDomain will create an empty domain with the provided name.
func NewDomain(name string) *Domain {
	return &Domain{
		name:     name,
		accounts: map[ID]*Account{},
		assets:   map[ID]*Asset{},
	}
}

// Name will return the name of the domain.
func (d *Domain) Name() string {
	return d.name
}

// Account will look up an account by id.
func (d *Domain) Account(id ID) (*Account, bool) {
	account, ok := d.accounts[id]
	return account, ok
}

// AddAccount will register the provided account. It will return false if an
// account with the same id is already registered.
func (d *Domain) AddAccount(account *Account) bool {
	// check existence
	if _, ok := d.accounts[account.ID()]; ok {
		return false
	}

	// register account
	d.accounts[account.ID()] = account

	return true
}

// Asset will look up an asset definition by id.
func (d *Domain) Asset(id ID) (*Asset, bool) {
	asset, ok := d.assets[id]
	return asset, ok
}

// AddAsset will register the provided asset definition. It will return false
// if a definition with the same id is already registered.
func (d *Domain) AddAsset(asset *Asset) bool {
	// check existence
	if _, ok := d.assets[asset.ID()]; ok {
		return false
	}

	// register asset
	d.assets[asset.ID()] = asset

	return true
}

// Accounts will return the number of registered accounts.
func (d *Domain) Accounts() int {
	return len(d.accounts)
}
