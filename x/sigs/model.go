package sigs

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/crypto"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

// BucketName is where we store the accounts
const BucketName = "sigs"

// UserData is the signing state of a single key. It is stored under the
// address of the public key.
type UserData struct {
	Pubkey   *crypto.PublicKey `json:"pubkey"`
	Sequence int64             `json:"sequence"`
}

var _ orm.Model = (*UserData)(nil)

func (u *UserData) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(u)
}

func (u *UserData) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, u)
}

func (u *UserData) Validate() error {
	if u.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if u.Sequence > 0 && u.Pubkey == nil {
		return errors.Wrap(ErrInvalidSequence, "needs pubkey")
	}
	if u.Pubkey != nil {
		return errors.Wrap(u.Pubkey.Validate(), "pubkey")
	}
	return nil
}

// CheckAndIncrementSequence implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", expected, u.Sequence)
	}

	// The greatest nonce value a javascript client can handle is
	// Number.MAX_SAFE_INTEGER.
	const maxSequenceValue = (1 << 53) - 1
	next := u.Sequence + 1
	if next > maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence = next
	return nil
}

// NewBucket creates the proper bucket for this extension
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName)
}

// loadUser returns the signing state of given key. A key that never signed
// anything starts at sequence zero.
func loadUser(db bazaar.ReadOnlyKVStore, addr bazaar.Address) (*UserData, error) {
	var u UserData
	switch err := NewBucket().One(db, addr, &u); {
	case err == nil:
		return &u, nil
	case errors.ErrNotFound.Is(err):
		return &UserData{}, nil
	default:
		return nil, err
	}
}

// NextNonce returns the next numeric nonce value that should be used during a
// transaction signing by given address.
func NextNonce(db bazaar.ReadOnlyKVStore, signer bazaar.Address) (int64, error) {
	u, err := loadUser(db, signer)
	if err != nil {
		return 0, errors.Wrap(err, "load user")
	}
	return u.Sequence, nil
}
