package nft

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

const optKey = "nft"

// GenesisToken is a token created when the chain starts.
type GenesisToken[D Details] struct {
	Owner   bazaar.Address `json:"owner"`
	Details D              `json:"details"`
	Sealed  bool           `json:"sealed"`
}

// Initializer creates the genesis tokens in the order they are declared,
// so the first token gets the identifier zero.
type Initializer[D Details] struct {
	Registry *Registry[D]
}

var _ bazaar.Initializer = Initializer[Details]{}

func (i Initializer[D]) FromGenesis(opts bazaar.Options, db bazaar.KVStore) error {
	var tokens []GenesisToken[D]
	if err := opts.ReadOptions(optKey, &tokens); err != nil {
		return err
	}
	for n, t := range tokens {
		id, err := i.Registry.Create(db, t.Owner, t.Details)
		if err != nil {
			return errors.Wrapf(err, "token %d", n)
		}
		if t.Sealed {
			if err := i.Registry.Seal(db, t.Owner, id); err != nil {
				return errors.Wrapf(err, "token %d", n)
			}
		}
	}
	return nil
}
