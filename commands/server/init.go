package server

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/crypto"
	"github.com/iov-one/bazaar/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	// DirConfig is the directory under home where tendermint keeps its
	// configuration files.
	DirConfig = "config"
	// GenesisFile is the name of the tendermint genesis file.
	GenesisFile = "genesis.json"

	appStateKey = "app_state"
	flagForce   = "i"
)

// GenOptions can parse command-line and flag to
// generate default app_state for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// GenerateCoinKey returns a new private key and the address that it
// controls. You can give coins to this address in the genesis file.
func GenerateCoinKey() (bazaar.Address, *crypto.PrivateKey) {
	key := crypto.GenPrivKeyEd25519()
	return key.PublicKey().Address(), key
}

// InitCmd will add the app_state generated by gen to the tendermint
// genesis file found under home. The genesis file must be created by
// "tendermint init" first. An existing app_state is only replaced when the
// -i flag is set.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	var force bool
	initFlags := flag.NewFlagSet("init", flag.ContinueOnError)
	initFlags.BoolVar(&force, flagForce, false, "ignore existing app_state")
	if err := initFlags.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	options, err := gen(initFlags.Args())
	if err != nil {
		return err
	}

	genFile := filepath.Join(home, DirConfig, GenesisFile)
	if err := addGenesisOptions(genFile, options, force); err != nil {
		return err
	}
	logger.Info("App initialized", "path", genFile)
	return nil
}

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

func addGenesisOptions(filename string, options json.RawMessage, force bool) error {
	bz, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot read genesis: %s", err)
	}

	var doc GenesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot parse genesis: %s", err)
	}

	if state := doc[appStateKey]; len(state) > 0 && string(state) != "null" && !force {
		return errors.Wrapf(errors.ErrState, "app_state already set in %s, use -%s to overwrite", filename, flagForce)
	}

	doc[appStateKey] = options
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := os.WriteFile(filename, out, 0600); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return nil
}
