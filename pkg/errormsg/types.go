// pkg/errormsg/types.go
package errormsg

// Error is the report produced for a failed binding call. The JSON field
// names are the ones consumers of the binding already inspect.
type Error struct {
	Errno         ErrorCode     `json:"errno"`
	Errcode       string        `json:"errcode"`
	Operation     string        `json:"erroperation"`
	Message       string        `json:"errmsg"`
	LowLevelErrno LowLevelError `json:"lowlevelErrorNo"`
	LowLevelError string        `json:"lowlevelError"`
	Output        string        `json:"output"`
}

// Error returns the composed message.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error carrying the same binding-level code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Errno == t.Errno
}

// HasLowLevel reports whether the vendor library returned a real failure.
func (e *Error) HasLowLevel() bool {
	return e.LowLevelErrno != SUCCESS
}

// Code returns a bare *Error for use as an errors.Is target.
func Code(code ErrorCode) *Error {
	return &Error{Errno: code, Errcode: code.String()}
}
