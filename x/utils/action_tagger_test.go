package utils

import (
	"context"
	"testing"

	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store"
	"github.com/iov-one/bazaar/weavetest"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func TestActionTagger(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/plain"}}

	h := weavetest.Decorate(&weavetest.Handler{}, NewActionTagger())
	res, err := h.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res.Tags))
	assert.Equal(t, []byte(ActionKey), res.Tags[0].Key)
	assert.Equal(t, []byte("test/plain"), res.Tags[0].Value)

	failing := weavetest.Decorate(&weavetest.Handler{DeliverErr: errors.ErrHuman}, NewActionTagger())
	_, err = failing.Deliver(ctx, db, tx)
	assert.IsErr(t, errors.ErrHuman, err)

	_, err = h.Deliver(ctx, db, &weavetest.Tx{Err: errors.ErrInput})
	assert.IsErr(t, errors.ErrInput, err)
}

func TestActionTaggerTarget(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	h := weavetest.Decorate(&weavetest.Handler{}, NewActionTagger())

	tx := &weavetest.Tx{Msg: &tokenMsg{Msg: weavetest.Msg{RoutePath: "market/buy"}, id: "7"}}
	res, err := h.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(res.Tags))
	assert.Equal(t, []byte("market/buy"), res.Tags[0].Value)
	assert.Equal(t, []byte(TargetKey), res.Tags[1].Key)
	assert.Equal(t, []byte("7"), res.Tags[1].Value)
}

type tokenMsg struct {
	weavetest.Msg
	id string
}

func (m *tokenMsg) Target() string { return m.id }
