package utils

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

// Recovery stops a panic raised by the rest of the stack. The call fails
// with ErrPanic and the panic is logged together with the call path, so a
// broken handler cannot halt the node.
type Recovery struct{}

var _ bazaar.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx bazaar.Context, store bazaar.KVStore, tx bazaar.Tx, next bazaar.Checker) (res *bazaar.CheckResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, panicked(ctx, tx, r)
		}
	}()
	return next.Check(ctx, store, tx)
}

func (Recovery) Deliver(ctx bazaar.Context, store bazaar.KVStore, tx bazaar.Tx, next bazaar.Deliverer) (res *bazaar.DeliverResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, panicked(ctx, tx, r)
		}
	}()
	return next.Deliver(ctx, store, tx)
}

func panicked(ctx bazaar.Context, tx bazaar.Tx, r interface{}) error {
	err := errors.Wrapf(errors.ErrPanic, "%v", r)
	bazaar.GetLogger(ctx).Error("recovered from panic",
		"path", bazaar.GetPath(tx),
		"panic", r)
	return err
}
