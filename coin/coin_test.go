package coin

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func TestCoinValidate(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		wantErr *errors.Error
	}{
		"valid":              {coin: NewCoin(1, 500, "BZR")},
		"negative":           {coin: NewCoin(-3, -5, "BZR")},
		"bad ticker":         {coin: NewCoin(1, 0, "bzr"), wantErr: errors.ErrCurrency},
		"whole overflow":     {coin: NewCoin(MaxInt+1, 0, "BZR"), wantErr: errors.ErrOverflow},
		"fractional too big": {coin: NewCoin(1, FracUnit, "BZR"), wantErr: errors.ErrOverflow},
		"mismatched sign":    {coin: NewCoin(1, -5, "BZR"), wantErr: errors.ErrState},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.coin.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %s error, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestCoinArithmetic(t *testing.T) {
	a := NewCoin(1, 600000000, "BZR")
	b := NewCoin(2, 500000000, "BZR")

	sum, err := a.Add(b)
	assert.Nil(t, err)
	assert.Equal(t, NewCoin(4, 100000000, "BZR"), sum)

	diff, err := a.Subtract(b)
	assert.Nil(t, err)
	assert.Equal(t, NewCoin(0, -900000000, "BZR"), diff)
	assert.Equal(t, false, diff.IsNonNegative())

	back, err := diff.Add(b)
	assert.Nil(t, err)
	assert.Equal(t, a, back)

	_, err = a.Add(NewCoin(1, 0, "ETH"))
	assert.IsErr(t, errors.ErrCurrency, err)

	_, err = NewCoin(MaxInt, 0, "BZR").Add(NewCoin(1, 0, "BZR"))
	assert.IsErr(t, errors.ErrOverflow, err)

	// zero coin without a ticker does not change the value
	same, err := a.Add(Coin{})
	assert.Nil(t, err)
	assert.Equal(t, a, same)
}

func TestCoinCompare(t *testing.T) {
	small := NewCoin(1, 5, "BZR")
	big := NewCoin(1, 7, "BZR")

	assert.Equal(t, -1, small.Compare(big))
	assert.Equal(t, 1, big.Compare(small))
	assert.Equal(t, 0, small.Compare(small))
	assert.Equal(t, true, big.IsGTE(small))
	assert.Equal(t, false, small.IsGTE(big))
	assert.Equal(t, false, big.IsGTE(NewCoin(0, 1, "ETH")))
	assert.Equal(t, true, small.IsPositive())
	assert.Equal(t, false, small.Negative().IsPositive())
}

func TestParseHumanFormat(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    Coin
		wantErr *errors.Error
	}{
		"whole only":        {raw: "4 BZR", want: NewCoin(4, 0, "BZR")},
		"no space":          {raw: "4BZR", want: NewCoin(4, 0, "BZR")},
		"fractional":        {raw: "1.5 BZR", want: NewCoin(1, 500000000, "BZR")},
		"smallest fraction": {raw: "0.000000001 ETH", want: NewCoin(0, 1, "ETH")},
		"negative":          {raw: "-2.25 IOV", want: NewCoin(-2, -250000000, "IOV")},
		"missing ticker":    {raw: "4", wantErr: errors.ErrInput},
		"too many decimals": {raw: "1.0000000001 BZR", wantErr: errors.ErrInput},
		"lower case ticker": {raw: "1 bzr", wantErr: errors.ErrInput},
		"empty":             {raw: "", wantErr: errors.ErrInput},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseHumanFormat(tc.raw)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCoinString(t *testing.T) {
	cases := map[string]Coin{
		"4 BZR":           NewCoin(4, 0, "BZR"),
		"1.5 BZR":         NewCoin(1, 500000000, "BZR"),
		"0.000000001 ETH": NewCoin(0, 1, "ETH"),
		"-0.25 IOV":       NewCoin(0, -250000000, "IOV"),
		"0":               {},
	}
	for want, c := range cases {
		t.Run(want, func(t *testing.T) {
			assert.Equal(t, want, c.String())
		})
	}
}

func TestCoinUnmarshalJSON(t *testing.T) {
	var human Coin
	assert.Nil(t, json.Unmarshal([]byte(`"3.1 BZR"`), &human))
	assert.Equal(t, NewCoin(3, 100000000, "BZR"), human)

	var obj Coin
	assert.Nil(t, json.Unmarshal([]byte(`{"whole": 7, "ticker": "ETH"}`), &obj))
	assert.Equal(t, NewCoin(7, 0, "ETH"), obj)

	var bad Coin
	err := json.Unmarshal([]byte(`"seven"`), &bad)
	assert.IsErr(t, errors.ErrInput, err)
}

func TestCoinSet(t *testing.T) {
	var c Coin
	assert.Nil(t, c.Set("12 BZR"))
	assert.Equal(t, NewCoin(12, 0, "BZR"), c)
	if err := c.Set("twelve"); err == nil {
		t.Fatal("want error")
	}
}
