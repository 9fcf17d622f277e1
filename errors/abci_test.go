package errors

import (
	stdlib "errors"
	"fmt"
	"testing"
)

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"plain registered error": {
			err:      ErrNotFound,
			wantCode: ErrNotFound.code,
			wantLog:  "not found",
		},
		"wrapped registered error": {
			err:      Wrap(Wrap(ErrUnauthorized, "foo"), "bar"),
			wantCode: ErrUnauthorized.code,
			wantLog:  "bar: foo: unauthorized",
		},
		"nil is success": {
			err:      nil,
			wantCode: SuccessABCICode,
			wantLog:  "",
		},
		"stdlib error is redacted": {
			err:      stdlib.New("secret"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"stdlib error in debug mode": {
			err:      stdlib.New("secret"),
			debug:    true,
			wantCode: internalABCICode,
			wantLog:  "secret",
		},
		"recovered panic is reported as internal": {
			err:      Wrap(ErrPanic, "index out of range"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"multi error reports the first code": {
			err:      Append(ErrAmount, ErrState),
			wantCode: ErrAmount.code,
			wantLog:  fmt.Sprint(Append(ErrAmount, ErrState)),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestRedact(t *testing.T) {
	if err := Redact(ErrPanic, false); ErrPanic.Is(err) {
		t.Error("panic must be redacted")
	}
	if err := Redact(nil, false); err != nil {
		t.Error("nil must stay nil")
	}
	if err := Redact(ErrNotFound, false); !ErrNotFound.Is(err) {
		t.Error("registered errors must not be redacted")
	}
	serr := stdlib.New("cannot read file")
	if err := Redact(serr, false); err == serr {
		t.Error("stdlib error must be redacted")
	}
	if err := Redact(serr, true); err != serr {
		t.Error("debug mode must not redact")
	}
}
