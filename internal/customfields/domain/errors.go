package domain

import "errors"

var (
	ErrFieldNameRequired   = errors.New("field name is required")
	ErrInvalidFieldName    = errors.New("field name must start with a letter or underscore and contain only letters, digits and underscores")
	ErrModelNameRequired   = errors.New("model name is required")
	ErrRecordIDRequired    = errors.New("record id is required")
	ErrDisplayNameRequired = errors.New("display name cannot be empty")
	ErrSystemFieldLocked   = errors.New("system fields must remain configurable")
	ErrInvalidColumns      = errors.New("column configuration must be a JSON object or array")
)
