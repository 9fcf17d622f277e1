package market

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
)

// BucketName is where listings are stored. Listings use the token
// identifier as the key.
const BucketName = "listing"

// Listing is an offer to sell a token for a fixed price.
type Listing struct {
	Seller bazaar.Address `json:"seller"`
	Price  coin.Coin      `json:"price"`
}

var _ orm.Model = (*Listing)(nil)

func (l *Listing) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(l)
}

func (l *Listing) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, l)
}

func (l *Listing) Validate() error {
	var err error
	err = errors.Append(err, errors.Wrap(l.Seller.Validate(), "seller"))
	err = errors.Append(err, errors.Wrap(validatePrice(l.Price), "price"))
	return err
}

func validatePrice(c coin.Coin) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive price: %s", c)
	}
	return nil
}

// NewBucket returns a bucket that stores listings by token identifier.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName)
}
