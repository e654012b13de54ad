package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// ValidationError marks errors that abort a ledger operation with no state
// change. The host discards all pending writes of the enclosing unit of work.
type ValidationError interface {
	ValidationError()
}

type ValidationErrorImpl struct {
}

func (ValidationErrorImpl) ValidationError() {
}

func IsValidationError(err error) bool {
	_, ok := err.(ValidationError)
	return ok
}

type IExtend interface {
	Extend(message string) error
}

func Extend(err error, message string) error {
	if ex, ok := err.(IExtend); ok {
		return ex.Extend(message)
	}
	return errors.Wrap(err, message)
}

func fmtExtend(self error, message string) string {
	return fmt.Sprintf("%s: %s", message, self)
}
