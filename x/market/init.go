package market

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/gconf"
)

// Initializer loads the market configuration from the genesis file. The
// configuration is optional.
type Initializer struct{}

var _ bazaar.Initializer = Initializer{}

func (Initializer) FromGenesis(opts bazaar.Options, kv bazaar.KVStore) error {
	var conf Configuration
	err := gconf.InitConfig(kv, opts, confPkg, &conf)
	if err != nil && !errors.ErrNotFound.Is(err) {
		return err
	}
	return nil
}
