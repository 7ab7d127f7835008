package mapping

import (
	"errors"
	"fmt"
)

// Sentinel errors describing why a raw mapping entry was rejected.
var (
	ErrFormat         = errors.New("format should be <retcode>:<key>:<label>")
	ErrKey            = errors.New("key should be a single character")
	ErrCodeNotNumeric = errors.New("retcode should be a number")
	ErrCodeOutOfRange = errors.New("retcode should be >= 64 and <= 113")
)

// ParseError names the offending raw entry and wraps one of the sentinels above.
type ParseError struct {
	Entry string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid mapping '%s', %v", e.Entry, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
