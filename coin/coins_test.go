package coin

import (
	"testing"

	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/weavetest/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineCoins(t *testing.T) {
	cs, err := CombineCoins(
		NewCoin(1, 0, "IOV"),
		NewCoin(2, 0, "BZR"),
		NewCoin(3, 0, "IOV"),
		NewCoin(0, 0, "ETH"),
	)
	require.NoError(t, err)
	require.Equal(t, Coins{NewCoin(2, 0, "BZR"), NewCoin(4, 0, "IOV")}, cs)
	require.NoError(t, cs.Validate())
}

func TestCoinsAddSubtract(t *testing.T) {
	base := Coins{NewCoin(5, 0, "BZR")}

	more, err := base.Add(NewCoin(1, 0, "ABC"))
	require.NoError(t, err)
	require.Equal(t, Coins{NewCoin(1, 0, "ABC"), NewCoin(5, 0, "BZR")}, more)
	// receiver is untouched
	require.Equal(t, Coins{NewCoin(5, 0, "BZR")}, base)

	unchanged, err := base.Add(NewCoin(0, 0, "BZR"))
	require.NoError(t, err)
	require.Equal(t, base, unchanged)

	empty, err := base.Subtract(NewCoin(5, 0, "BZR"))
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())

	neg, err := base.Subtract(NewCoin(7, 0, "BZR"))
	require.NoError(t, err)
	require.Equal(t, Coins{NewCoin(-2, 0, "BZR")}, neg)
	require.False(t, neg.IsPositive())
}

func TestCoinsContains(t *testing.T) {
	cs := Coins{NewCoin(1, 0, "BZR"), NewCoin(10, 0, "ETH")}

	assert.Equal(t, true, cs.Contains(NewCoin(10, 0, "ETH")))
	assert.Equal(t, false, cs.Contains(NewCoin(10, 1, "ETH")))
	assert.Equal(t, false, cs.Contains(NewCoin(1, 0, "IOV")))
	assert.Equal(t, NewCoin(1, 0, "BZR"), cs.Balance("BZR"))
	assert.Equal(t, Coin{Ticker: "IOV"}, cs.Balance("IOV"))
}

func TestCoinsCombine(t *testing.T) {
	a := Coins{NewCoin(1, 0, "BZR")}
	b := Coins{NewCoin(2, 0, "BZR"), NewCoin(3, 0, "ETH")}
	c, err := a.Combine(b)
	require.NoError(t, err)
	require.True(t, c.Equals(Coins{NewCoin(3, 0, "BZR"), NewCoin(3, 0, "ETH")}))
}

func TestCoinsValidate(t *testing.T) {
	unsorted := Coins{NewCoin(1, 0, "ETH"), NewCoin(1, 0, "BZR")}
	require.True(t, errors.ErrState.Is(unsorted.Validate()))

	zero := Coins{NewCoin(0, 0, "ETH")}
	require.True(t, errors.ErrState.Is(zero.Validate()))

	require.NoError(t, Coins{}.Validate())
}
