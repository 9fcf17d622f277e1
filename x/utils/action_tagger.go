package utils

import (
	"github.com/iov-one/bazaar"
	"github.com/tendermint/tendermint/libs/common"
)

// Tag keys appended by ActionTagger.
const (
	ActionKey = "action"
	TargetKey = "target"
)

// targeted is implemented by messages that operate on a single token.
type targeted interface {
	Target() string
}

// ActionTagger tags every successful delivery with the message path. When
// the message names the token it operates on, a target tag is added as
// well, so a client can subscribe to the history of one token.
type ActionTagger struct{}

var _ bazaar.Decorator = ActionTagger{}

func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

func (ActionTagger) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx, next bazaar.Checker) (*bazaar.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (ActionTagger) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx, next bazaar.Deliverer) (*bazaar.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, actionTags(msg)...)
	return res, nil
}

func actionTags(msg bazaar.Msg) []common.KVPair {
	tags := []common.KVPair{
		{Key: []byte(ActionKey), Value: []byte(msg.Path())},
	}
	if t, ok := msg.(targeted); ok {
		tags = append(tags, common.KVPair{Key: []byte(TargetKey), Value: []byte(t.Target())})
	}
	return tags
}
