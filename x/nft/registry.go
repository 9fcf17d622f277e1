package nft

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
)

const (
	// BucketName is where the tokens are stored.
	BucketName = "nft"
	totalName  = "total"
)

// Controller is the capability other extensions use to take custody of a
// token. It does not depend on the details type.
type Controller interface {
	// Owner returns the current owner of a token.
	Owner(db bazaar.ReadOnlyKVStore, id AssetID) (bazaar.Address, error)
	// Lock marks the token as held. It fails with ErrLocked if the token
	// is already locked.
	Lock(db bazaar.KVStore, id AssetID) error
	// Unlock releases the token. It fails with ErrState if the token is not
	// locked.
	Unlock(db bazaar.KVStore, id AssetID) error
	// SetOwner assigns a new owner without any authorization check. The
	// token must not be locked.
	SetOwner(db bazaar.KVStore, id AssetID, to bazaar.Address) error
}

// Registry holds all tokens with details of type D.
type Registry[D Details] struct {
	bucket orm.ModelBucket
	total  orm.Sequence
}

var _ Controller = (*Registry[Details])(nil)

// NewRegistry returns a registry using the default bucket.
func NewRegistry[D Details]() *Registry[D] {
	return &Registry[D]{
		bucket: orm.NewModelBucket(BucketName),
		total:  orm.NewSequence(BucketName, totalName),
	}
}

// Create allocates the next identifier and stores a new token owned by
// owner. Nothing is written when the identifier space is exhausted.
func (r *Registry[D]) Create(db bazaar.KVStore, owner bazaar.Address, details D) (AssetID, error) {
	t := Token[D]{Owner: owner, Details: details}
	if err := t.Validate(); err != nil {
		return 0, errors.Wrap(err, "invalid token")
	}
	next, err := r.total.Next(db)
	switch {
	case errors.ErrOverflow.Is(err):
		return 0, errors.Wrap(ErrIDSpaceExhausted, "cannot allocate token id")
	case err != nil:
		return 0, err
	}
	id := AssetID(next)
	if err := r.bucket.Put(db, id.Key(), &t); err != nil {
		return 0, errors.Wrap(err, "cannot store token")
	}
	return id, nil
}

// Mutate replaces the details of a token owned by caller.
func (r *Registry[D]) Mutate(db bazaar.KVStore, caller bazaar.Address, id AssetID, details D) error {
	t, err := r.owned(db, caller, id)
	if err != nil {
		return err
	}
	if t.Locked {
		return errors.Wrapf(ErrLocked, "token %s", id)
	}
	if t.Sealed {
		return errors.Wrapf(ErrSealed, "token %s", id)
	}
	t.Details = details
	return r.save(db, id, t)
}

// Transfer assigns a token owned by caller to a new owner. The previous
// owner is returned. A sealed token can still be transferred.
func (r *Registry[D]) Transfer(db bazaar.KVStore, caller bazaar.Address, id AssetID, to bazaar.Address) (bazaar.Address, error) {
	t, err := r.owned(db, caller, id)
	if err != nil {
		return nil, err
	}
	if t.Locked {
		return nil, errors.Wrapf(ErrLocked, "token %s", id)
	}
	from := t.Owner
	t.Owner = to
	if err := r.save(db, id, t); err != nil {
		return nil, err
	}
	return from, nil
}

// Seal forbids any further mutation of a token owned by caller.
func (r *Registry[D]) Seal(db bazaar.KVStore, caller bazaar.Address, id AssetID) error {
	t, err := r.owned(db, caller, id)
	if err != nil {
		return err
	}
	if t.Locked {
		return errors.Wrapf(ErrLocked, "token %s", id)
	}
	if t.Sealed {
		return errors.Wrapf(ErrSealed, "token %s already sealed", id)
	}
	t.Sealed = true
	return r.save(db, id, t)
}

// Token returns the token with given identifier.
func (r *Registry[D]) Token(db bazaar.ReadOnlyKVStore, id AssetID) (*Token[D], error) {
	var t Token[D]
	if err := r.bucket.One(db, id.Key(), &t); err != nil {
		return nil, errors.Wrapf(err, "token %s", id)
	}
	return &t, nil
}

// Total returns the number of identifiers allocated so far. It is also the
// identifier of the next token.
func (r *Registry[D]) Total(db bazaar.ReadOnlyKVStore) (uint64, error) {
	return r.total.Current(db)
}

func (r *Registry[D]) Owner(db bazaar.ReadOnlyKVStore, id AssetID) (bazaar.Address, error) {
	t, err := r.Token(db, id)
	if err != nil {
		return nil, err
	}
	return t.Owner, nil
}

func (r *Registry[D]) Lock(db bazaar.KVStore, id AssetID) error {
	t, err := r.Token(db, id)
	if err != nil {
		return err
	}
	if t.Locked {
		return errors.Wrapf(ErrLocked, "token %s", id)
	}
	t.Locked = true
	return r.save(db, id, t)
}

func (r *Registry[D]) Unlock(db bazaar.KVStore, id AssetID) error {
	t, err := r.Token(db, id)
	if err != nil {
		return err
	}
	if !t.Locked {
		return errors.Wrapf(errors.ErrState, "token %s is not locked", id)
	}
	t.Locked = false
	return r.save(db, id, t)
}

func (r *Registry[D]) SetOwner(db bazaar.KVStore, id AssetID, to bazaar.Address) error {
	t, err := r.Token(db, id)
	if err != nil {
		return err
	}
	if t.Locked {
		return errors.Wrapf(ErrLocked, "token %s", id)
	}
	t.Owner = to
	return r.save(db, id, t)
}

// owned loads a token and ensures caller is its owner.
func (r *Registry[D]) owned(db bazaar.ReadOnlyKVStore, caller bazaar.Address, id AssetID) (*Token[D], error) {
	t, err := r.Token(db, id)
	if err != nil {
		return nil, err
	}
	if !t.Owner.Equals(caller) {
		return nil, errors.Wrapf(ErrNotOwner, "token %s", id)
	}
	return t, nil
}

func (r *Registry[D]) save(db bazaar.KVStore, id AssetID, t *Token[D]) error {
	if err := r.bucket.Put(db, id.Key(), t); err != nil {
		return errors.Wrapf(err, "cannot store token %s", id)
	}
	return nil
}
