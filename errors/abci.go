package errors

import (
	"errors"
	"fmt"
)

const (
	// SuccessABCICode is the code of a successful ABCI response.
	SuccessABCICode = 0

	// Errors without a registered root, and recovered panics, are reported
	// under this code with a generic log.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log of the ABCI response for err.
//
// Registered errors keep their code and message. Anything else, including
// a recovered panic, is reported as an internal error; its details are only
// shown in debug mode, where the log also carries the stack trace.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	if ErrPanic.Is(err) {
		code = internalABCICode
	}
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	default:
		return code, err.Error()
	}
}

type coder interface {
	ABCICode() uint32
}

// abciCode returns the code of the first registered error found by
// unwrapping err.
func abciCode(err error) uint32 {
	for !errIsNil(err) {
		switch e := err.(type) {
		case coder:
			return e.ABCICode()
		case causer:
			err = e.Cause()
		default:
			return internalABCICode
		}
	}
	return SuccessABCICode
}

// Redact replaces every error that would be reported as internal with a
// generic error carrying no details. Panics are always redacted.
//
// In debug mode err is returned unchanged.
func Redact(err error, debug bool) error {
	if debug || errIsNil(err) {
		return err
	}
	if ErrPanic.Is(err) || abciCode(err) == internalABCICode {
		return errors.New(internalABCILog)
	}
	return err
}
