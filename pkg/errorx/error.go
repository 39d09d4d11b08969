package errorx

import "fmt"

type Error struct {
	Code    uint64
	Message string
}

func (e Error) Error() string {
	return e.Message
}

// New creates an Error with the given code and a user-facing message. The
// message is returned to the client as-is, so keep internal details in logs.
func New(code Code, format string, args ...any) Error {
	return Error{Code: uint64(code), Message: fmt.Sprintf(format, args...)}
}
