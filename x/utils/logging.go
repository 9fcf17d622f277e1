package utils

import (
	"time"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

// Logging writes one entry per call once the rest of the stack returned.
// Failures are logged as errors with their ABCI code, a successful
// delivery at info level and a successful check at debug level.
type Logging struct{}

var _ bazaar.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx bazaar.Context, store bazaar.KVStore, tx bazaar.Tx, next bazaar.Checker) (*bazaar.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logCall(ctx, tx, start, resLog, err, true)
	return res, err
}

func (Logging) Deliver(ctx bazaar.Context, store bazaar.KVStore, tx bazaar.Tx, next bazaar.Deliverer) (*bazaar.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logCall(ctx, tx, start, resLog, err, false)
	return res, err
}

func logCall(ctx bazaar.Context, tx bazaar.Tx, start time.Time, msg string, err error, check bool) {
	keyvals := []interface{}{
		"path", bazaar.GetPath(tx),
		"duration", time.Since(start) / time.Microsecond,
	}
	if m, e := tx.GetMsg(); e == nil {
		if t, ok := m.(targeted); ok {
			keyvals = append(keyvals, TargetKey, t.Target())
		}
	}
	logger := bazaar.GetLogger(ctx).With(keyvals...)

	// An empty message is still logged, the key values carry the call.
	switch {
	case err != nil:
		code, _ := errors.ABCIInfo(err, true)
		logger.Error(msg, "code", code, "err", err)
	case check:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
