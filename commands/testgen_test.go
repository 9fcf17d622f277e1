package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/bazaar/weavetest"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func TestTestGenCmd(t *testing.T) {
	outdir := filepath.Join(t.TempDir(), "out")
	examples := []Example{
		{Filename: "msg", Obj: &weavetest.Msg{RoutePath: "nft/create", Serialized: []byte("payload")}},
	}
	assert.Nil(t, TestGenCmd(examples, []string{outdir}))

	bin, err := os.ReadFile(filepath.Join(outdir, "msg.bin"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("payload"), bin)

	js, err := os.ReadFile(filepath.Join(outdir, "msg.json"))
	assert.Nil(t, err)
	if len(js) == 0 {
		t.Fatal("empty json file")
	}
}
