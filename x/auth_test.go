package x_test

import (
	"context"
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/weavetest"
	"github.com/iov-one/bazaar/weavetest/assert"
	"github.com/iov-one/bazaar/x"
)

func TestAuth(t *testing.T) {
	a := weavetest.NewCondition()
	b := weavetest.NewCondition()
	c := weavetest.NewCondition()

	ctxAuth := &weavetest.CtxAuth{Key: "auth"}
	static := &weavetest.Auth{Signers: []bazaar.Condition{b, c}}
	multi := x.ChainAuth(ctxAuth, static)

	ctx := ctxAuth.SetConditions(context.Background(), a, b)

	cases := map[string]struct {
		auth      x.Authenticator
		ctx       bazaar.Context
		wantConds []bazaar.Condition
		signer    bazaar.Condition
		hasA      bool
		hasC      bool
	}{
		"empty context": {
			auth: ctxAuth,
			ctx:  context.Background(),
		},
		"context auth": {
			auth:      ctxAuth,
			ctx:       ctx,
			wantConds: []bazaar.Condition{a, b},
			signer:    a,
			hasA:      true,
		},
		"static auth": {
			auth:      static,
			ctx:       ctx,
			wantConds: []bazaar.Condition{b, c},
			signer:    b,
			hasC:      true,
		},
		"chained auth removes duplicates": {
			auth:      multi,
			ctx:       ctx,
			wantConds: []bazaar.Condition{a, b, c},
			signer:    a,
			hasA:      true,
			hasC:      true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			conds := tc.auth.GetConditions(tc.ctx)
			assert.Equal(t, len(tc.wantConds), len(conds))
			for i := range conds {
				if !conds[i].Equals(tc.wantConds[i]) {
					t.Fatalf("condition %d: want %s, got %s", i, tc.wantConds[i], conds[i])
				}
			}
			assert.Equal(t, len(tc.wantConds), len(x.GetAddresses(tc.ctx, tc.auth)))

			signer := x.MainSigner(tc.ctx, tc.auth)
			if !signer.Equals(tc.signer) {
				t.Fatalf("want %s main signer, got %s", tc.signer, signer)
			}
			assert.Equal(t, tc.hasA, tc.auth.HasAddress(tc.ctx, a.Address()))
			assert.Equal(t, tc.hasC, tc.auth.HasAddress(tc.ctx, c.Address()))
		})
	}

	all := []bazaar.Address{a.Address(), c.Address()}
	assert.Equal(t, true, x.HasAllAddresses(ctx, multi, all))
	assert.Equal(t, false, x.HasAllAddresses(ctx, static, all))
}
