package market

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/gconf"
)

const confPkg = "market"

// Configuration is stored in the database as a gconf singleton.
type Configuration struct {
	// Owner is allowed to update the configuration.
	Owner bazaar.Address `json:"owner"`
	// Currency is the ticker all prices must be declared in. When empty,
	// any currency is accepted.
	Currency string `json:"currency"`
}

var _ gconf.OwnedConfig = (*Configuration)(nil)

func (c *Configuration) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, c)
}

func (c *Configuration) GetOwner() bazaar.Address {
	return c.Owner
}

func (c *Configuration) Validate() error {
	var err error
	if len(c.Owner) != 0 {
		err = errors.Append(err, errors.Wrap(c.Owner.Validate(), "owner"))
	}
	if c.Currency != "" && !coin.IsCC(c.Currency) {
		err = errors.Append(err, errors.Wrapf(errors.ErrCurrency, "invalid currency: %q", c.Currency))
	}
	return err
}

func loadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, confPkg, &conf); {
	case err == nil:
		return conf, nil
	case errors.ErrNotFound.Is(err):
		return Configuration{}, nil
	default:
		return conf, errors.Wrap(err, "load configuration")
	}
}
