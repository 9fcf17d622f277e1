package market

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/gconf"
	"github.com/iov-one/bazaar/x"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r bazaar.Registry, auth x.Authenticator, ex *Exchange) {
	r.Handle(ListMsg{}.Path(), ListHandler{auth: auth, ex: ex})
	r.Handle(UnlistMsg{}.Path(), UnlistHandler{auth: auth, ex: ex})
	r.Handle(BuyMsg{}.Path(), BuyHandler{auth: auth, ex: ex})
	r.Handle(UpdateConfigurationMsg{}.Path(), NewConfigHandler(auth))
}

// RegisterQuery will register listings as "/listings".
func RegisterQuery(qr bazaar.QueryRouter) {
	NewBucket().Register("listings", qr)
}

// NewConfigHandler returns a handler of UpdateConfigurationMsg.
func NewConfigHandler(auth x.Authenticator) bazaar.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler(confPkg, &conf, auth)
}

func caller(ctx bazaar.Context, auth x.Authenticator) (bazaar.Address, error) {
	signer := x.MainSigner(ctx, auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "signature required")
	}
	return signer.Address(), nil
}

// ListHandler offers a token for sale.
type ListHandler struct {
	auth x.Authenticator
	ex   *Exchange
}

var _ bazaar.Handler = ListHandler{}

func (h ListHandler) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	if _, err := h.apply(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bazaar.CheckResult{}, nil
}

func (h ListHandler) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	msg, err := h.apply(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &bazaar.DeliverResult{
		Events: []bazaar.Event{Listed{ID: msg.ID, Price: msg.Price}},
	}, nil
}

func (h ListHandler) apply(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*ListMsg, error) {
	var msg ListMsg
	if err := bazaar.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	seller, err := caller(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	if err := h.ex.List(db, seller, msg.ID, msg.Price); err != nil {
		return nil, err
	}
	return &msg, nil
}

// UnlistHandler withdraws an offer.
type UnlistHandler struct {
	auth x.Authenticator
	ex   *Exchange
}

var _ bazaar.Handler = UnlistHandler{}

func (h UnlistHandler) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	if _, err := h.apply(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bazaar.CheckResult{}, nil
}

func (h UnlistHandler) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	msg, err := h.apply(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &bazaar.DeliverResult{
		Events: []bazaar.Event{Unlisted{ID: msg.ID}},
	}, nil
}

func (h UnlistHandler) apply(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*UnlistMsg, error) {
	var msg UnlistMsg
	if err := bazaar.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	seller, err := caller(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	if err := h.ex.Unlist(db, seller, msg.ID); err != nil {
		return nil, err
	}
	return &msg, nil
}

// BuyHandler pays for a listed token and takes its ownership.
type BuyHandler struct {
	auth x.Authenticator
	ex   *Exchange
}

var _ bazaar.Handler = BuyHandler{}

func (h BuyHandler) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	if _, err := h.apply(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bazaar.CheckResult{}, nil
}

func (h BuyHandler) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	ev, err := h.apply(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &bazaar.DeliverResult{
		Events: []bazaar.Event{*ev},
	}, nil
}

func (h BuyHandler) apply(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*Sold, error) {
	var msg BuyMsg
	if err := bazaar.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	buyer, err := caller(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	if _, err := h.ex.Buy(db, buyer, msg.ID); err != nil {
		return nil, err
	}
	return &Sold{ID: msg.ID, Buyer: buyer}, nil
}
