package app

import (
	"context"
	"testing"

	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/weavetest"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func TestRouter(t *testing.T) {
	r := NewRouter()

	good := &weavetest.Handler{}
	r.Handle("good/path", good)
	r.Handle("bad", &weavetest.Handler{DeliverErr: errors.ErrState})

	assert.Panics(t, func() { r.Handle("good/path", good) })
	assert.Panics(t, func() { r.Handle("l:7", good) })

	ctx := context.Background()
	call := func(path string) error {
		tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: path}}
		if _, err := r.Check(ctx, nil, tx); err != nil {
			return err
		}
		_, err := r.Deliver(ctx, nil, tx)
		return err
	}

	assert.Nil(t, call("good/path"))
	assert.Equal(t, 2, good.CallCount())

	assert.IsErr(t, errors.ErrState, call("bad"))
	assert.IsErr(t, errors.ErrNotFound, call("missing"))
	assert.Equal(t, 2, good.CallCount())
}
