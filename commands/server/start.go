package server

import (
	"flag"

	"github.com/iov-one/bazaar/errors"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagBind  = "bind"
	flagDebug = "debug"

	// DefaultBind is the address tendermint connects to by default.
	DefaultBind = "tcp://localhost:26658"
)

// StartOptions configure the abci server.
type StartOptions struct {
	Bind  string
	Debug bool
}

// ParseStartFlags reads the start command flags. Values in defaults are
// used when a flag is not given.
func ParseStartFlags(args []string, defaults StartOptions) (StartOptions, error) {
	opts := defaults
	if opts.Bind == "" {
		opts.Bind = DefaultBind
	}
	startFlags := flag.NewFlagSet("start", flag.ContinueOnError)
	startFlags.StringVar(&opts.Bind, flagBind, opts.Bind, "address server listens on")
	startFlags.BoolVar(&opts.Debug, flagDebug, opts.Debug, "call stack returned on error")
	if err := startFlags.Parse(args); err != nil {
		return opts, errors.Wrap(errors.ErrInput, err.Error())
	}
	return opts, nil
}

// AppGenerator lets us lazily initialize app, using home dir
// and logger potentially initialized with other flags
type AppGenerator func(home string, logger log.Logger, debug bool) (abci.Application, error)

// StartCmd initializes the application and serves it over an abci socket
// until the process is terminated.
func StartCmd(gen AppGenerator, logger log.Logger, home string, opts StartOptions) error {
	app, err := gen(home, logger, opts.Debug)
	if err != nil {
		return err
	}

	logger.Info("Starting ABCI app", "bind", opts.Bind)

	svr, err := server.NewServer(opts.Bind, "socket", app)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot create listener: %s", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return errors.Wrapf(errors.ErrState, "cannot start server: %s", err)
	}

	cmn.TrapSignal(logger, func() {
		// Cleanup
		if err := svr.Stop(); err != nil {
			logger.Error("cannot stop server", "err", err)
		}
	})

	// TrapSignal exits the process on a signal, run until then.
	select {}
}
