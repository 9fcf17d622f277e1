package market

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
	"github.com/iov-one/bazaar/x/cash"
	"github.com/iov-one/bazaar/x/nft"
	"github.com/iov-one/bazaar/x/utils"
)

// Exchange keeps track of listed tokens. It holds the lock of every listed
// token in the registry.
//
// Each operation runs in its own cache-wrap of the store and is written only
// if it succeeds as a whole.
type Exchange struct {
	bucket orm.ModelBucket
	assets nft.Controller
	money  cash.Transferer
}

// NewExchange returns an exchange trading tokens of the given registry for
// currency moved by the given transferer.
func NewExchange(assets nft.Controller, money cash.Transferer) *Exchange {
	return &Exchange{
		bucket: NewBucket(),
		assets: assets,
		money:  money,
	}
}

// List offers a token owned by seller for the given price. The token is
// locked until it is unlisted or sold.
func (e *Exchange) List(db bazaar.KVStore, seller bazaar.Address, id nft.AssetID, price coin.Coin) error {
	return utils.Atomic(db, func(db bazaar.KVStore) error {
		if err := e.ensureOwner(db, seller, id); err != nil {
			return err
		}
		if err := e.checkPrice(db, price); err != nil {
			return err
		}
		if err := e.assets.Lock(db, id); err != nil {
			return err
		}
		l := Listing{Seller: seller, Price: price}
		if err := e.bucket.Put(db, id.Key(), &l); err != nil {
			return errors.Wrap(err, "cannot store listing")
		}
		return nil
	})
}

// Unlist withdraws the offer of a token owned by seller and releases the
// token.
func (e *Exchange) Unlist(db bazaar.KVStore, seller bazaar.Address, id nft.AssetID) error {
	return utils.Atomic(db, func(db bazaar.KVStore) error {
		if err := e.ensureOwner(db, seller, id); err != nil {
			return err
		}
		if _, err := e.Listing(db, id); err != nil {
			return err
		}
		if err := e.assets.Unlock(db, id); err != nil {
			return err
		}
		return e.bucket.Delete(db, id.Key())
	})
}

// Buy pays the listed price from the buyer to the seller and gives the
// token, unlocked, to the buyer. The buyer must keep the minimal balance.
// The consumed listing is returned.
func (e *Exchange) Buy(db bazaar.KVStore, buyer bazaar.Address, id nft.AssetID) (*Listing, error) {
	var sold *Listing
	err := utils.Atomic(db, func(db bazaar.KVStore) error {
		l, err := e.Listing(db, id)
		if err != nil {
			return err
		}
		if l.Seller.Equals(buyer) {
			return errors.Wrap(errors.ErrInput, "seller cannot buy own token")
		}
		if err := e.money.Transfer(db, buyer, l.Seller, l.Price, cash.KeepAlive); err != nil {
			return errors.Wrap(err, "payment")
		}
		if err := e.assets.Unlock(db, id); err != nil {
			return err
		}
		if err := e.assets.SetOwner(db, id, buyer); err != nil {
			return err
		}
		if err := e.bucket.Delete(db, id.Key()); err != nil {
			return err
		}
		sold = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sold, nil
}

// Listing returns the offer for a token. ErrNotListed is returned if the
// token is not for sale.
func (e *Exchange) Listing(db bazaar.ReadOnlyKVStore, id nft.AssetID) (*Listing, error) {
	var l Listing
	switch err := e.bucket.One(db, id.Key(), &l); {
	case err == nil:
		return &l, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrNotListed, "token %s", id)
	default:
		return nil, err
	}
}

func (e *Exchange) ensureOwner(db bazaar.ReadOnlyKVStore, who bazaar.Address, id nft.AssetID) error {
	owner, err := e.assets.Owner(db, id)
	if err != nil {
		return err
	}
	if !owner.Equals(who) {
		return errors.Wrapf(nft.ErrNotOwner, "token %s", id)
	}
	return nil
}

func (e *Exchange) checkPrice(db bazaar.ReadOnlyKVStore, price coin.Coin) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if conf.Currency != "" && conf.Currency != price.Ticker {
		return errors.Wrapf(errors.ErrCurrency, "price must be in %s", conf.Currency)
	}
	return nil
}
