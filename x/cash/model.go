package cash

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Wallet is the set of coins held by a single address. Wallets are stored
// under the address of their owner.
type Wallet struct {
	Coins coin.Coins `json:"coins"`
}

var _ orm.Model = (*Wallet)(nil)

func (w *Wallet) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(w)
}

func (w *Wallet) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, w)
}

// Validate requires that all coins are in alphabetical order and none of
// them is zero.
func (w *Wallet) Validate() error {
	return w.Coins.Validate()
}

// NewBucket returns a bucket that stores wallets by owner address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName)
}

// loadWallet returns the wallet of given address or an empty one if the
// address holds nothing.
func loadWallet(db bazaar.ReadOnlyKVStore, b orm.ModelBucket, addr bazaar.Address) (*Wallet, error) {
	var w Wallet
	switch err := b.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{}, nil
	default:
		return nil, err
	}
}

// saveWallet writes given wallet. A wallet without coins is removed.
func saveWallet(db bazaar.KVStore, b orm.ModelBucket, addr bazaar.Address, w *Wallet) error {
	if w.Coins.IsEmpty() {
		err := b.Delete(db, addr)
		if errors.ErrNotFound.Is(err) {
			return nil
		}
		return err
	}
	return b.Put(db, addr, w)
}
