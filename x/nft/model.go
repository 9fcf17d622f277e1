package nft

import (
	"strconv"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

// AssetID identifies a token. Identifiers are allocated in increasing order
// starting with zero.
type AssetID uint64

// Key returns the 8 byte big endian representation used as the database key.
func (id AssetID) Key() []byte {
	return orm.EncodeSequence(uint64(id))
}

func (id AssetID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseAssetID decodes a database key into an identifier.
func ParseAssetID(key []byte) (AssetID, error) {
	if err := orm.ValidateSequence(key); err != nil {
		return 0, err
	}
	return AssetID(orm.DecodeSequence(key)), nil
}

// Details is the payload describing a token. It is replaced as a whole on
// every mutation. Details must be a value that amino can serialize.
type Details interface {
	Validate() error
}

// Token is a single asset with its owner.
type Token[D Details] struct {
	Owner   bazaar.Address `json:"owner"`
	Details D              `json:"details"`
	// Sealed prevents any further mutation of the details. It is never
	// cleared.
	Sealed bool `json:"sealed"`
	// Locked is held by another extension, for example while the token is
	// listed for sale.
	Locked bool `json:"locked"`
}

func (t *Token[D]) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(t)
}

func (t *Token[D]) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, t)
}

func (t *Token[D]) Validate() error {
	var err error
	err = errors.Append(err, errors.Wrap(t.Owner.Validate(), "owner"))
	err = errors.Append(err, errors.Wrap(t.Details.Validate(), "details"))
	return err
}
