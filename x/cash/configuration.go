package cash

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/gconf"
)

const confPkg = "cash"

// Configuration is stored in the database as a gconf singleton.
type Configuration struct {
	// Owner is allowed to update the configuration.
	Owner bazaar.Address `json:"owner"`
	// MinimalBalance is the lowest amount of its ticker that a sender must
	// keep when a transfer requires the sender to stay alive.
	MinimalBalance coin.Coin `json:"minimal_balance"`
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
	if !c.MinimalBalance.IsZero() {
		err = errors.Append(err, errors.Wrap(c.MinimalBalance.Validate(), "minimal balance"))
		if !c.MinimalBalance.IsNonNegative() {
			err = errors.Append(err, errors.Wrap(errors.ErrAmount, "minimal balance cannot be negative"))
		}
	}
	return err
}

// loadConf returns the stored configuration. A chain without a cash
// configuration requires no minimal balance.
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
