package assert

import (
	"fmt"
	"testing"

	"github.com/iov-one/bazaar/errors"
)

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		ErrWant  error
		ErrGot   error
		WantFail bool
	}{
		"same error": {
			ErrWant:  errors.ErrEmpty,
			ErrGot:   errors.ErrEmpty,
			WantFail: false,
		},
		"compared to nil": {
			ErrWant:  nil,
			ErrGot:   errors.ErrEmpty,
			WantFail: true,
		},
		"both nil": {
			ErrWant:  nil,
			ErrGot:   nil,
			WantFail: false,
		},
		"wrapped": {
			ErrWant:  errors.ErrEmpty,
			ErrGot:   errors.Wrap(errors.ErrEmpty, "test"),
			WantFail: false,
		},
		"different kind": {
			ErrWant:  errors.ErrEmpty,
			ErrGot:   errors.ErrState,
			WantFail: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{}
			IsErr(mock, tc.ErrWant, tc.ErrGot)
			failed := mock.failcalls > 0
			if tc.WantFail != failed {
				t.Fatalf("unexpected failed call state: %d failures", mock.failcalls)
			}
		})
	}
}

func TestEqualAndNil(t *testing.T) {
	mock := &tmock{}
	Equal(mock, []byte("a"), []byte("a"))
	Nil(mock, nil)
	Nil(mock, (*int)(nil))
	if mock.failcalls != 0 {
		t.Fatalf("unexpected failures: %d", mock.failcalls)
	}

	Equal(mock, 1, int64(1))
	Nil(mock, 0)
	if mock.failcalls != 2 {
		t.Fatalf("want 2 failures, got %d", mock.failcalls)
	}
}

func TestPanics(t *testing.T) {
	mock := &tmock{}
	Panics(mock, func() { panic("boom") })
	Panics(mock, func() {})
	if mock.failcalls != 1 {
		t.Fatalf("want 1 failure, got %d", mock.failcalls)
	}
}

// tmock records failures instead of stopping the test.
type tmock struct {
	failcalls int
}

func (m *tmock) Helper() {}

func (m *tmock) Fatal(args ...interface{}) {
	m.failcalls++
}

func (m *tmock) Fatalf(format string, args ...interface{}) {
	m.failcalls++
	_ = fmt.Sprintf(format, args...)
}
