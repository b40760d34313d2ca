// pkg/errormsg/errormsg.go

// Package errormsg turns nrfjprog binding failures into structured,
// human-readable errors.
//
// In the message the binding-level code is printed in hex, "(0x9)", and the
// low-level vendor code in signed decimal, "NVMC_ERROR (-20)".
//
// Every function here is a pure function of its arguments and is safe for
// concurrent use.
package errormsg

import (
	"fmt"
	"strings"
)

var ordinals = []string{"First", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh"}

// New builds the error for a failed operation. It returns nil when code is
// Success. lowLevel is reported only when it is not SUCCESS, and log only
// when it is non-empty.
func New(code ErrorCode, operation, log string, lowLevel LowLevelError) error {
	if code == Success {
		return nil
	}
	return newError(code, operation, log, lowLevel)
}

func newError(code ErrorCode, operation, log string, lowLevel LowLevelError) *Error {
	var b strings.Builder
	fmt.Fprintf(&b, "Error occured when %s. Errorcode: %s (0x%x)\n", operation, code, int(code))

	if lowLevel != SUCCESS {
		fmt.Fprintf(&b, "Lowlevel error: %s (%d)\n", lowLevel, int32(lowLevel))
	}

	if log != "" {
		b.WriteString(log)
		b.WriteString("\n")
	}

	return &Error{
		Errno:         code,
		Errcode:       code.String(),
		Operation:     operation,
		Message:       b.String(),
		LowLevelErrno: lowLevel,
		LowLevelError: lowLevel.String(),
		Output:        log,
	}
}

// TypeError describes an argument of the wrong type by its zero-based position.
func TypeError(argument int, expected string) string {
	ordinal := UnknownName
	if argument >= 0 && argument < len(ordinals) {
		ordinal = ordinals[argument]
	}
	return ordinal + " argument must be a " + expected
}

// StructError describes an invalid property of a structured argument.
func StructError(name, message string) string {
	return "Property: " + name + " Message: " + message
}
