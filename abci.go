package bazaar

import (
	"fmt"

	"github.com/iov-one/bazaar/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

//---------- helpers for handling responses --------

// DeliverOrError returns an abci response for DeliverTx,
// converting the error message if present, or using the successful
// DeliverResult
func DeliverOrError(result *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil {
		return DeliverTxError(err, debug)
	}
	return result.ToABCI()
}

// CheckOrError returns an abci response for CheckTx,
// converting the error message if present, or using the successful
// CheckResult
func CheckOrError(result *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		return CheckTxError(err, debug)
	}
	return result.ToABCI()
}

//---------- events --------

// Event is a notification emitted by a handler once the state transition it
// performs succeeded. A failed call never produces an event.
type Event interface {
	// EventKind returns the name of the notification, for example
	// "nft/created".
	EventKind() string
	// Attributes returns the indexable payload of the notification.
	Attributes() []common.KVPair
}

// EventTags returns the representation of given events as tendermint tags.
// Each event is tagged by its kind under the "event" key, followed by all
// of its attributes prefixed with the kind.
func EventTags(events []Event) []common.KVPair {
	var tags []common.KVPair
	for _, e := range events {
		kind := e.EventKind()
		tags = append(tags, common.KVPair{Key: []byte("event"), Value: []byte(kind)})
		for _, a := range e.Attributes() {
			tags = append(tags, common.KVPair{
				Key:   []byte(kind + "." + string(a.Key)),
				Value: a.Value,
			})
		}
	}
	return tags
}

//---------- results and some wrappers --------

// DeliverResult captures any non-error abci result
// to make sure people use error for error cases
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// Events are the notifications emitted by the handler.
	Events []Event
	// Tags, if present, will be used by tendermint to index and search the transaction history
	Tags []common.KVPair
}

// ToABCI converts our internal type into an abci response
func (d DeliverResult) ToABCI() abci.ResponseDeliverTx {
	tags := append(EventTags(d.Events), d.Tags...)
	return abci.ResponseDeliverTx{
		Data: d.Data,
		Log:  d.Log,
		Tags: tags,
	}
}

// CheckResult captures any non-error abci result
// to make sure people use error for error cases
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
}

// ToABCI converts our internal type into an abci response
func (c CheckResult) ToABCI() abci.ResponseCheckTx {
	return abci.ResponseCheckTx{
		Data: c.Data,
		Log:  c.Log,
	}
}

// DeliverTxError converts any error into a abci.ResponseDeliverTx, preserving
// as much info as possible.
// When in debug mode always the full error information is returned.
func DeliverTxError(err error, debug bool) abci.ResponseDeliverTx {
	code, log := errors.ABCIInfo(err, debug)
	if code != errors.SuccessABCICode {
		log = fmt.Sprintf("cannot deliver tx: %s", log)
	}
	return abci.ResponseDeliverTx{
		Code: code,
		Log:  log,
	}
}

// CheckTxError converts any error into a abci.ResponseCheckTx, preserving as
// much info as possible.
// When in debug mode always the full error information is returned.
func CheckTxError(err error, debug bool) abci.ResponseCheckTx {
	code, log := errors.ABCIInfo(err, debug)
	if code != errors.SuccessABCICode {
		log = fmt.Sprintf("cannot check tx: %s", log)
	}
	return abci.ResponseCheckTx{
		Code: code,
		Log:  log,
	}
}
