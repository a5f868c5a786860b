package repository

import (
	"errors"
	"fmt"
)

// ErrStorage marks a failed persistence operation. Callers can test for
// it with errors.Is to distinguish storage failures from domain errors.
var ErrStorage = errors.New("storage failure")

// storageErr wraps a driver error with ErrStorage and the failing operation.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
