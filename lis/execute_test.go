package lis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ledgercore/state"
)

// buildWorld creates a world with the "domain" domain and the provided
// accounts registered in it.
func buildWorld(accounts ...string) *state.World {
	world := state.NewWorld()
	domain := state.NewDomain("domain")
	world.AddDomain(domain)
	for _, name := range accounts {
		domain.AddAccount(state.NewAccount(state.NewID(name, "domain")))
	}
	return world
}

func TestCreateDomain(t *testing.T) {
	world := state.NewWorld()

	// create
	err := Invoke(&CreateDomain{Name: "domain"}, world)
	assert.NoError(t, err)

	domain, ok := world.Domain("domain")
	assert.True(t, ok)
	assert.Equal(t, "domain", domain.Name())

	// duplicate
	err = Invoke(&CreateDomain{Name: "domain"}, world)
	var existsErr *ExistsError
	assert.ErrorAs(t, err, &existsErr)
	assert.Equal(t, "domain", existsErr.Entity)
}

func TestCreateAccount(t *testing.T) {
	world := state.NewWorld()

	// missing domain
	err := Invoke(&CreateAccount{Name: "account", Domain: "domain"}, world)
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "domain", notFoundErr.Entity)
	assert.Equal(t, state.DomainID("domain"), notFoundErr.ID)

	// create
	world.AddDomain(state.NewDomain("domain"))
	err = Invoke(&CreateAccount{Name: "account", Domain: "domain"}, world)
	assert.NoError(t, err)

	account, ok := world.Account(state.NewID("account", "domain"))
	assert.True(t, ok)
	assert.Equal(t, 0, account.Size())

	// duplicate
	err = Invoke(&CreateAccount{Name: "account", Domain: "domain"}, world)
	var existsErr *ExistsError
	assert.ErrorAs(t, err, &existsErr)
	assert.Equal(t, state.NewID("account", "domain"), existsErr.ID)
}

func TestCreateAsset(t *testing.T) {
	world := state.NewWorld()

	// missing domain
	err := Invoke(&CreateAsset{Name: "asset", Domain: "domain"}, world)
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)

	// create
	world.AddDomain(state.NewDomain("domain"))
	err = Invoke(&CreateAsset{Name: "asset", Domain: "domain", Decimals: 2}, world)
	assert.NoError(t, err)

	asset, ok := world.Asset(state.NewID("asset", "domain"))
	assert.True(t, ok)
	assert.Equal(t, state.NewID("asset", "domain"), asset.ID())

	// duplicate
	err = Invoke(&CreateAsset{Name: "asset", Domain: "domain"}, world)
	var existsErr *ExistsError
	assert.ErrorAs(t, err, &existsErr)
}

func TestAddPeer(t *testing.T) {
	world := state.NewWorld()

	// register
	err := Invoke(&AddPeer{Address: "localhost:1337"}, world)
	assert.NoError(t, err)

	peer, ok := world.Peer("localhost:1337")
	assert.True(t, ok)
	assert.Equal(t, "localhost:1337", peer.Address())

	// duplicate
	err = Invoke(&AddPeer{Address: "localhost:1337"}, world)
	var existsErr *ExistsError
	assert.ErrorAs(t, err, &existsErr)
}

func TestAddAssetQuantity(t *testing.T) {
	world := buildWorld("account")

	// place asset
	err := Invoke(&AddAssetQuantity{
		Asset:   state.NewID("asset", "domain"),
		Account: state.NewID("account", "domain"),
		Amount:  20002,
	}, world)
	assert.NoError(t, err)

	account, _ := world.Account(state.NewID("account", "domain"))
	assert.True(t, account.Holds(state.NewID("asset", "domain")))

	// holding is presence, not a counter
	err = Invoke(&AddAssetQuantity{
		Asset:   state.NewID("asset", "domain"),
		Account: state.NewID("account", "domain"),
		Amount:  20002,
	}, world)
	assert.NoError(t, err)
	assert.Equal(t, 1, account.Size())

	// missing account
	err = Invoke(&AddAssetQuantity{
		Asset:   state.NewID("asset", "domain"),
		Account: state.NewID("missing", "domain"),
		Amount:  1,
	}, world)
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "account", notFoundErr.Entity)
	assert.Equal(t, state.NewID("missing", "domain"), notFoundErr.ID)
}

func TestTransferAsset(t *testing.T) {
	world := buildWorld("account", "dest")
	gold := state.NewID("asset", "domain")

	// place asset on source
	err := Invoke(&AddAssetQuantity{
		Asset:   gold,
		Account: state.NewID("account", "domain"),
		Amount:  20002,
	}, world)
	assert.NoError(t, err)
	assert.Equal(t, 1, world.Holders(gold))

	// transfer moves, does not duplicate
	err = Invoke(&TransferAsset{
		Source:      state.NewID("account", "domain"),
		Destination: state.NewID("dest", "domain"),
		Asset:       gold,
		Description: "d",
		Amount:      2002,
	}, world)
	assert.NoError(t, err)

	source, _ := world.Account(state.NewID("account", "domain"))
	destination, _ := world.Account(state.NewID("dest", "domain"))
	assert.False(t, source.Holds(gold))
	assert.True(t, destination.Holds(gold))
	assert.Equal(t, 1, world.Holders(gold))
}

func TestTransferAssetErrors(t *testing.T) {
	gold := state.NewID("gold", "domain")
	place := &AddAssetQuantity{Asset: gold, Account: state.NewID("a", "domain"), Amount: 1}

	// missing source fails cleanly
	world := buildWorld("a", "b")
	twin := buildWorld("a", "b")
	assert.NoError(t, Invoke(place, world))
	assert.NoError(t, Invoke(place, twin))

	err := Invoke(&TransferAsset{
		Source:      state.NewID("missing", "domain"),
		Destination: state.NewID("b", "domain"),
		Asset:       gold,
	}, world)
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, state.NewID("missing", "domain"), notFoundErr.ID)
	assert.Equal(t, twin, world)

	// missing destination fails before the source is touched
	err = Invoke(&TransferAsset{
		Source:      state.NewID("a", "domain"),
		Destination: state.NewID("missing", "domain"),
		Asset:       gold,
	}, world)
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, state.NewID("missing", "domain"), notFoundErr.ID)
	assert.Equal(t, twin, world)

	// source does not hold the asset
	err = Invoke(&TransferAsset{
		Source:      state.NewID("b", "domain"),
		Destination: state.NewID("a", "domain"),
		Asset:       gold,
	}, world)
	var notHeldErr *NotHeldError
	assert.ErrorAs(t, err, &notHeldErr)
	assert.Equal(t, gold, notHeldErr.Asset)
	assert.Equal(t, state.NewID("b", "domain"), notHeldErr.Account)
	assert.Equal(t, twin, world)
}

func TestDeterminism(t *testing.T) {
	contracts := []Contract{
		&CreateDomain{Name: "domain"},
		&CreateAccount{Name: "account", Domain: "domain"},
		&CreateAccount{Name: "dest", Domain: "domain"},
		&CreateAsset{Name: "asset", Domain: "domain", Decimals: 0},
		&AddAssetQuantity{
			Asset:   state.NewID("asset", "domain"),
			Account: state.NewID("account", "domain"),
			Amount:  20002,
		},
		&TransferAsset{
			Source:      state.NewID("account", "domain"),
			Destination: state.NewID("dest", "domain"),
			Asset:       state.NewID("asset", "domain"),
			Description: "d",
			Amount:      2002,
		},
		&AddPeer{Address: "localhost:1337"},
		&AppendRole{Account: state.NewID("account", "domain"), Role: "auditor"},
	}

	// apply the same ordered sequence to two independent worlds
	first := state.NewWorld()
	second := state.NewWorld()
	for _, contract := range contracts {
		firstErr := Invoke(contract, first)
		secondErr := Invoke(contract, second)
		assert.Equal(t, firstErr, secondErr)
	}

	assert.Equal(t, first, second)
}

func TestScenario(t *testing.T) {
	// domain "domain" with accounts "account" and "dest"
	world := buildWorld("account", "dest")

	// add asset quantity
	err := Invoke(&AddAssetQuantity{
		Asset:   state.NewID("asset", "domain"),
		Account: state.NewID("account", "domain"),
		Amount:  20002,
	}, world)
	assert.NoError(t, err)

	account, _ := world.Account(state.NewID("account", "domain"))
	assert.True(t, account.Holds(state.NewID("asset", "domain")))

	// transfer asset
	err = Invoke(&TransferAsset{
		Source:      state.NewID("account", "domain"),
		Destination: state.NewID("dest", "domain"),
		Asset:       state.NewID("asset", "domain"),
		Description: "d",
		Amount:      2002,
	}, world)
	assert.NoError(t, err)

	destination, _ := world.Account(state.NewID("dest", "domain"))
	assert.False(t, account.Holds(state.NewID("asset", "domain")))
	assert.True(t, destination.Holds(state.NewID("asset", "domain")))
}
