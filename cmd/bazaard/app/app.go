/*
Package app links together all the various components
to construct the bazaar application.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/app"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store/iavl"
	"github.com/iov-one/bazaar/x"
	"github.com/iov-one/bazaar/x/cash"
	"github.com/iov-one/bazaar/x/market"
	"github.com/iov-one/bazaar/x/nft"
	"github.com/iov-one/bazaar/x/sigs"
	"github.com/iov-one/bazaar/x/utils"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Name is reported in the abci info.
const Name = "bazaar"

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns the router of all calls the application accepts.
func Router(authFn x.Authenticator, assets *nft.Registry[Artwork]) *app.Router {
	r := app.NewRouter()
	money := cash.NewController(cash.NewBucket())
	cash.RegisterRoutes(r, authFn, money)
	nft.RegisterRoutes(r, authFn, assets)
	market.RegisterRoutes(r, authFn, market.NewExchange(assets, money))
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/wallets", "/auth", "/nfts" and "/listings"
func QueryRouter() bazaar.QueryRouter {
	r := bazaar.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		nft.RegisterQuery,
		market.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack(assets *nft.Registry[Artwork]) bazaar.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn, assets))
}

// Initializers loads the genesis state of every extension.
func Initializers(assets *nft.Registry[Artwork]) bazaar.Initializer {
	return bazaar.ChainInitializers(
		cash.Initializer{},
		nft.Initializer[Artwork]{Registry: assets},
		market.Initializer{},
	)
}

// Application constructs the ABCI application on top of the given store.
func Application(kv bazaar.CommitKVStore, logger log.Logger, debug bool) app.BaseApp {
	assets := nft.NewRegistry[Artwork]()
	store := app.NewStoreApp(Name, kv, QueryRouter(), context.Background()).
		WithInit(Initializers(assets)).
		WithLogger(logger)
	return app.NewBaseApp(store, TxDecoder, Stack(assets), debug)
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (bazaar.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "bazaar.db")
	}
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return nil, err
	}
	return Application(kv, logger, debug), nil
}
