package nft

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
)

// RegisterQuery exposes tokens under "/nfts" and the number of allocated
// identifiers under "/nfts/total".
func RegisterQuery(qr bazaar.QueryRouter) {
	orm.NewModelBucket(BucketName).Register("nfts", qr)
	qr.Register("/nfts/total", totalQuery(orm.NewSequence(BucketName, totalName)))
}

// totalQuery returns the raw counter value. Query data is ignored.
func totalQuery(seq orm.Sequence) bazaar.QueryFunc {
	return func(db bazaar.ReadOnlyKVStore, mod string, _ []byte) ([]bazaar.Model, error) {
		if mod != bazaar.KeyQueryMod {
			return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
		}
		total, err := seq.Current(db)
		if err != nil {
			return nil, err
		}
		return []bazaar.Model{bazaar.Pair(seq.Key(), orm.EncodeSequence(total))}, nil
	}
}
