package cash

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
)

// Existence declares what a transfer may do to the sender balance.
type Existence uint8

const (
	// AllowDeath permits the transfer to drop the sender balance below
	// the minimal balance, down to zero.
	AllowDeath Existence = iota
	// KeepAlive rejects a transfer that would leave the sender with less
	// than the minimal balance.
	KeepAlive
)

func (e Existence) String() string {
	if e == KeepAlive {
		return "keep_alive"
	}
	return "allow_death"
}

// Transferer is the currency capability used by other extensions.
type Transferer interface {
	Transfer(db bazaar.KVStore, src, dest bazaar.Address, amount coin.Coin, req Existence) error
}

// Controller is the full set of operations on balances.
type Controller interface {
	Transferer
	// Balance returns all coins held by given address.
	Balance(db bazaar.ReadOnlyKVStore, addr bazaar.Address) (coin.Coins, error)
	// MoveCoins is a transfer that may empty the sender wallet.
	MoveCoins(db bazaar.KVStore, src, dest bazaar.Address, amount coin.Coin) error
	// IssueCoins adds (or removes when negative) coins from a wallet
	// without any source.
	IssueCoins(db bazaar.KVStore, dest bazaar.Address, amount coin.Coin) error
}

// BaseController is the default Controller implementation.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller operating on wallets in given bucket.
func NewController(bucket orm.ModelBucket) BaseController {
	return BaseController{bucket: bucket}
}

func (c BaseController) Balance(db bazaar.ReadOnlyKVStore, addr bazaar.Address) (coin.Coins, error) {
	w, err := loadWallet(db, c.bucket, addr)
	if err != nil {
		return nil, err
	}
	return w.Coins, nil
}

func (c BaseController) MoveCoins(db bazaar.KVStore, src, dest bazaar.Address, amount coin.Coin) error {
	return c.Transfer(db, src, dest, amount, AllowDeath)
}

// Transfer moves given amount from src to dest. Sending to self only
// verifies the amount and changes nothing.
func (c BaseController) Transfer(db bazaar.KVStore, src, dest bazaar.Address, amount coin.Coin, req Existence) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount %s", amount)
	}
	if src.Equals(dest) {
		return nil
	}

	sender, err := loadWallet(db, c.bucket, src)
	if err != nil {
		return errors.Wrap(err, "sender")
	}
	if !sender.Coins.Contains(amount) {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds: %s has %s", src, sender.Coins.Balance(amount.Ticker))
	}
	left, err := sender.Coins.Subtract(amount)
	if err != nil {
		return err
	}

	if req == KeepAlive {
		conf, err := loadConf(db)
		if err != nil {
			return err
		}
		minimal := conf.MinimalBalance
		if minimal.Ticker == amount.Ticker && minimal.IsPositive() {
			if rest := left.Balance(amount.Ticker); !rest.IsGTE(minimal) {
				return errors.Wrapf(errors.ErrAmount, "sender would be left with %s, below the minimal balance of %s", rest, minimal)
			}
		}
	}

	recipient, err := loadWallet(db, c.bucket, dest)
	if err != nil {
		return errors.Wrap(err, "recipient")
	}
	received, err := recipient.Coins.Add(amount)
	if err != nil {
		return errors.Wrap(err, "recipient")
	}

	if err := saveWallet(db, c.bucket, src, &Wallet{Coins: left}); err != nil {
		return errors.Wrap(err, "save sender")
	}
	if err := saveWallet(db, c.bucket, dest, &Wallet{Coins: received}); err != nil {
		return errors.Wrap(err, "save recipient")
	}
	return nil
}

// IssueCoins attempts to add the given amount of coins to the destination
// address. Fails if it overflows the wallet or if the wallet would hold a
// negative amount.
func (c BaseController) IssueCoins(db bazaar.KVStore, dest bazaar.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	w, err := loadWallet(db, c.bucket, dest)
	if err != nil {
		return err
	}
	coins, err := w.Coins.Add(amount)
	if err != nil {
		return err
	}
	if b := coins.Balance(amount.Ticker); !b.IsNonNegative() {
		return errors.Wrapf(errors.ErrAmount, "cannot issue %s, balance would be %s", amount, b)
	}
	return saveWallet(db, c.bucket, dest, &Wallet{Coins: coins})
}
