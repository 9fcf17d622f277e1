package nft

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/x"
)

// RegisterRoutes registers handlers of all messages of this extension.
// Locking is not exposed as a message.
func RegisterRoutes[D Details](r bazaar.Registry, auth x.Authenticator, reg *Registry[D]) {
	r.Handle(PathCreate, CreateHandler[D]{auth: auth, reg: reg})
	r.Handle(PathMutate, MutateHandler[D]{auth: auth, reg: reg})
	r.Handle(PathTransfer, TransferHandler[D]{auth: auth, reg: reg})
	r.Handle(PathSeal, SealHandler[D]{auth: auth, reg: reg})
}

// caller returns the address of the main signer.
func caller(ctx bazaar.Context, auth x.Authenticator) (bazaar.Address, error) {
	signer := x.MainSigner(ctx, auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "signature required")
	}
	return signer.Address(), nil
}

// CreateHandler allocates a new token. The identifier is returned as the
// result data.
type CreateHandler[D Details] struct {
	auth x.Authenticator
	reg  *Registry[D]
}

func (h CreateHandler[D]) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &bazaar.CheckResult{}, nil
}

func (h CreateHandler[D]) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	owner, msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	id, err := h.reg.Create(db, owner, msg.Details)
	if err != nil {
		return nil, err
	}
	return &bazaar.DeliverResult{
		Data:   id.Key(),
		Events: []bazaar.Event{Created{ID: id, Owner: owner}},
	}, nil
}

func (h CreateHandler[D]) validate(ctx bazaar.Context, tx bazaar.Tx) (bazaar.Address, *CreateMsg[D], error) {
	var msg CreateMsg[D]
	if err := bazaar.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := caller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return owner, &msg, nil
}

// MutateHandler replaces the details of a token.
type MutateHandler[D Details] struct {
	auth x.Authenticator
	reg  *Registry[D]
}

func (h MutateHandler[D]) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	if _, err := h.apply(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bazaar.CheckResult{}, nil
}

func (h MutateHandler[D]) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	msg, err := h.apply(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &bazaar.DeliverResult{
		Events: []bazaar.Event{Mutated{ID: msg.ID}},
	}, nil
}

func (h MutateHandler[D]) apply(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*MutateMsg[D], error) {
	var msg MutateMsg[D]
	if err := bazaar.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	who, err := caller(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	if err := h.reg.Mutate(db, who, msg.ID, msg.Details); err != nil {
		return nil, err
	}
	return &msg, nil
}

// TransferHandler changes the owner of a token.
type TransferHandler[D Details] struct {
	auth x.Authenticator
	reg  *Registry[D]
}

func (h TransferHandler[D]) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	if _, err := h.apply(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bazaar.CheckResult{}, nil
}

func (h TransferHandler[D]) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	ev, err := h.apply(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &bazaar.DeliverResult{
		Events: []bazaar.Event{*ev},
	}, nil
}

func (h TransferHandler[D]) apply(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*Transferred, error) {
	var msg TransferMsg
	if err := bazaar.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	who, err := caller(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	from, err := h.reg.Transfer(db, who, msg.ID, msg.Destination)
	if err != nil {
		return nil, err
	}
	return &Transferred{ID: msg.ID, From: from, To: msg.Destination}, nil
}

// SealHandler seals a token.
type SealHandler[D Details] struct {
	auth x.Authenticator
	reg  *Registry[D]
}

func (h SealHandler[D]) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	if _, err := h.apply(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bazaar.CheckResult{}, nil
}

func (h SealHandler[D]) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	msg, err := h.apply(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &bazaar.DeliverResult{
		Events: []bazaar.Event{Sealed{ID: msg.ID}},
	}, nil
}

func (h SealHandler[D]) apply(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*SealMsg, error) {
	var msg SealMsg
	if err := bazaar.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	who, err := caller(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	if err := h.reg.Seal(db, who, msg.ID); err != nil {
		return nil, err
	}
	return &msg, nil
}
