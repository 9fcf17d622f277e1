package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/bazaar"
	bazaard "github.com/iov-one/bazaar/cmd/bazaard/app"
	"github.com/iov-one/bazaar/commands"
	"github.com/iov-one/bazaar/commands/server"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/x/nft"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagHome     = "home"
	flagConfig   = "config"
	flagLogLevel = "log_level"
)

var (
	varHome     *string
	varConfig   *string
	varLogLevel *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".bazaar")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")
	varConfig = flag.String(flagConfig, "", "optional YAML file with default settings")
	varLogLevel = flag.String(flagLogLevel, "info", "minimal level of logged messages (debug, info, error, none)")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("bazaard")
	fmt.Println("          Asset registry and exchange node")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Initialize app options in genesis file")
	fmt.Println("start     Run the abci server")
	fmt.Println("validate  Check that genesis files can be loaded")
	fmt.Println("testgen   Write example encodings into a directory")
	fmt.Println("version   Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.bazaar")
  -config string
        optional YAML file with default settings
  -log_level string
        minimal level of logged messages (default "info")`)
}

// settings returns the configuration file values overwritten by the flags
// given on the command line.
func settings() (*Config, error) {
	cfg := &Config{}
	if *varConfig != "" {
		var err error
		if cfg, err = loadConfig(*varConfig); err != nil {
			return nil, err
		}
	}
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	cfg.merge(&Config{Home: *varHome, LogLevel: *varLogLevel}, set)
	return cfg, nil
}

func newLogger(level string) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "bazaar")
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return log.NewFilter(logger, opt), nil
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	if err := run(cmd, rest); err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}

func run(cmd string, args []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	switch cmd {
	case "help":
		helpMessage()
		return nil
	case "init":
		return server.InitCmd(bazaard.GenInitOptions, logger, cfg.Home, args)
	case "start":
		opts, err := server.ParseStartFlags(args, server.StartOptions{Bind: cfg.Bind, Debug: cfg.Debug})
		if err != nil {
			return err
		}
		return server.StartCmd(bazaard.GenerateApp, logger, cfg.Home, opts)
	case "validate":
		return server.ValidateGenesis(bazaard.Initializers(nft.NewRegistry[bazaard.Artwork]()), args)
	case "testgen":
		return commands.TestGenCmd(bazaard.Examples(), args)
	case "version":
		fmt.Println(bazaar.Version())
		return nil
	default:
		return errors.Wrapf(errors.ErrInput, "unknown command: %s", cmd)
	}
}
