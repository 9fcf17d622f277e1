package weavetest

import "github.com/iov-one/bazaar"

// Decorator counts the calls passing through it and records the path of
// every message it saw. A non nil CheckErr or DeliverErr is returned
// instead of calling the next handler. Failed calls are counted too.
type Decorator struct {
	CheckErr   error
	DeliverErr error

	checkCall   int
	deliverCall int
	paths       []string
}

var _ bazaar.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx, next bazaar.Checker) (*bazaar.CheckResult, error) {
	d.checkCall++
	d.paths = append(d.paths, bazaar.GetPath(tx))
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx, next bazaar.Deliverer) (*bazaar.DeliverResult, error) {
	d.deliverCall++
	d.paths = append(d.paths, bazaar.GetPath(tx))
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int   { return d.checkCall }
func (d *Decorator) DeliverCallCount() int { return d.deliverCall }
func (d *Decorator) CallCount() int        { return d.checkCall + d.deliverCall }

// Paths returns message paths in the order the calls were made. A
// transaction without a readable message is recorded as "(missing)".
func (d *Decorator) Paths() []string {
	return d.paths
}

// Decorate wraps the handler so that the first decorator is the outermost.
func Decorate(h bazaar.Handler, ds ...bazaar.Decorator) bazaar.Handler {
	for i := len(ds) - 1; i >= 0; i-- {
		h = decorated{next: h, dec: ds[i]}
	}
	return h
}

type decorated struct {
	next bazaar.Handler
	dec  bazaar.Decorator
}

func (d decorated) Check(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.CheckResult, error) {
	return d.dec.Check(ctx, db, tx, d.next)
}

func (d decorated) Deliver(ctx bazaar.Context, db bazaar.KVStore, tx bazaar.Tx) (*bazaar.DeliverResult, error) {
	return d.dec.Deliver(ctx, db, tx, d.next)
}
