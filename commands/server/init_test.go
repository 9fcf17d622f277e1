package server

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

// setupHome creates a home directory with a genesis file as written by
// "tendermint init".
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(home, DirConfig), 0755))
	genesis := `{
  "genesis_time": "2019-05-01T10:00:00Z",
  "chain_id": "test-chain-Ab12Cd",
  "validators": []
}`
	require.NoError(t, os.WriteFile(filepath.Join(home, DirConfig, GenesisFile), []byte(genesis), 0600))
	return home
}

func readGenesis(t *testing.T, home string) GenesisDoc {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(home, DirConfig, GenesisFile))
	require.NoError(t, err)
	var doc GenesisDoc
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func TestInitCmd(t *testing.T) {
	home := setupHome(t)
	logger := log.NewNopLogger()

	var gotArgs []string
	gen := func(args []string) (json.RawMessage, error) {
		gotArgs = args
		return json.RawMessage(`{"cash":[]}`), nil
	}

	require.NoError(t, InitCmd(gen, logger, home, []string{"BZR", "addr"}))
	assert.Equal(t, []string{"BZR", "addr"}, gotArgs)

	doc := readGenesis(t, home)
	assert.JSONEq(t, `{"cash":[]}`, string(doc["app_state"]))
	assert.JSONEq(t, `"test-chain-Ab12Cd"`, string(doc["chain_id"]))

	err := InitCmd(gen, logger, home, nil)
	assert.True(t, errors.ErrState.Is(err), "%+v", err)

	other := func([]string) (json.RawMessage, error) {
		return json.RawMessage(`{"cash":[{"address":"x"}]}`), nil
	}
	require.NoError(t, InitCmd(other, logger, home, []string{"-i"}))
	doc = readGenesis(t, home)
	assert.JSONEq(t, `{"cash":[{"address":"x"}]}`, string(doc["app_state"]))
}

func TestInitCmdWithoutGenesis(t *testing.T) {
	gen := func([]string) (json.RawMessage, error) { return json.RawMessage(`{}`), nil }
	err := InitCmd(gen, log.NewNopLogger(), t.TempDir(), nil)
	assert.True(t, errors.ErrInput.Is(err), "%+v", err)
}

func TestGenerateCoinKey(t *testing.T) {
	addr, key := GenerateCoinKey()
	require.NoError(t, addr.Validate())
	assert.True(t, key.PublicKey().Address().Equals(addr))
}

// optionInit requires the "value" option to be a positive number.
type optionInit struct{}

func (optionInit) FromGenesis(opts bazaar.Options, db bazaar.KVStore) error {
	var n int
	if err := opts.ReadOptions("value", &n); err != nil {
		return err
	}
	if n <= 0 {
		return errors.Wrap(errors.ErrInput, "value must be positive")
	}
	return nil
}

func TestValidateGenesis(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
		return path
	}
	good := write("good.json", `{"chain_id": "test-chain-1", "app_state": {"value": 4}}`)
	bad := write("bad.json", `{"chain_id": "test-chain-1", "app_state": {"value": -1}}`)
	badChain := write("chain.json", `{"chain_id": "x", "app_state": {"value": 4}}`)

	assert.NoError(t, ValidateGenesis(optionInit{}, []string{good}))
	assert.True(t, errors.ErrInput.Is(ValidateGenesis(optionInit{}, []string{good, bad})))
	assert.True(t, errors.ErrInput.Is(ValidateGenesis(optionInit{}, []string{badChain})))
	assert.True(t, errors.ErrInput.Is(ValidateGenesis(optionInit{}, []string{filepath.Join(dir, "missing.json")})))
}

func TestParseStartFlags(t *testing.T) {
	opts, err := ParseStartFlags(nil, StartOptions{})
	require.NoError(t, err)
	assert.Equal(t, StartOptions{Bind: DefaultBind}, opts)

	opts, err = ParseStartFlags([]string{"-debug"}, StartOptions{Bind: "tcp://0.0.0.0:1234"})
	require.NoError(t, err)
	assert.Equal(t, StartOptions{Bind: "tcp://0.0.0.0:1234", Debug: true}, opts)

	opts, err = ParseStartFlags([]string{"-bind", "unix:///tmp/app.sock"}, StartOptions{Bind: "tcp://0.0.0.0:1234"})
	require.NoError(t, err)
	assert.Equal(t, "unix:///tmp/app.sock", opts.Bind)

	_, err = ParseStartFlags([]string{"-unknown"}, StartOptions{})
	assert.True(t, errors.ErrInput.Is(err))
}
