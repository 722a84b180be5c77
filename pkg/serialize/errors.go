package serialize

import "fmt"

type ErrFormat struct {
	Reason string
}

func (e *ErrFormat) Error() string {
	return fmt.Sprintf("malformed save data: %s", e.Reason)
}

func IsFormatError(err error) bool {
	_, ok := err.(*ErrFormat)
	return ok
}
