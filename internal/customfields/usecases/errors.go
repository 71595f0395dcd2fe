package usecases

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateField              = errors.New("field already exists")
	ErrFieldNotFound               = errors.New("field not found")
	ErrValidation                  = errors.New("validation failed")
	ErrStorage                     = errors.New("storage failure")
	ErrSystemField                 = errors.New("system fields cannot be deleted")
	ErrColumnConfigurationNotFound = errors.New("column configuration not found")
)

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

func storageError(operation string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, operation, err)
}
