package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"customfields-server/internal/infra/utils"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

// ColumnConfiguration holds the presentation settings of a page's columns,
// either as an object keyed by field name or as an ordered list of names.
type ColumnConfiguration struct {
	Namespace shareddomain.Namespace
	ModelName ModelName
	PageName  PageName
	Columns   json.RawMessage
	UpdatedAt utils.Time
}

func NewColumnConfiguration(ns shareddomain.Namespace, model ModelName, page PageName, columns json.RawMessage) (ColumnConfiguration, error) {
	if err := validateColumns(columns); err != nil {
		return ColumnConfiguration{}, err
	}
	return ColumnConfiguration{
		Namespace: ns,
		ModelName: model,
		PageName:  page,
		Columns:   columns,
		UpdatedAt: utils.Time{Time: time.Now().UTC()},
	}, nil
}

// RemoveField drops every reference to field. It reports whether the
// configuration changed and whether it is now empty.
func (c ColumnConfiguration) RemoveField(field string) (ColumnConfiguration, bool, error) {
	trimmed := bytes.TrimSpace(c.Columns)
	if len(trimmed) == 0 {
		return c, false, nil
	}

	var encoded []byte
	switch trimmed[0] {
	case '{':
		var columns map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &columns); err != nil {
			return c, false, fmt.Errorf("%w: %w", ErrInvalidColumns, err)
		}
		if _, ok := columns[field]; !ok {
			return c, false, nil
		}
		delete(columns, field)
		var err error
		if encoded, err = encodeColumns(columns); err != nil {
			return c, false, err
		}
	case '[':
		var columns []string
		if err := json.Unmarshal(trimmed, &columns); err != nil {
			return c, false, fmt.Errorf("%w: %w", ErrInvalidColumns, err)
		}
		kept := make([]string, 0, len(columns))
		for _, column := range columns {
			if column != field {
				kept = append(kept, column)
			}
		}
		if len(kept) == len(columns) {
			return c, false, nil
		}
		var err error
		if encoded, err = encodeColumns(kept); err != nil {
			return c, false, err
		}
	default:
		return c, false, ErrInvalidColumns
	}

	result := c
	result.Columns = encoded
	result.UpdatedAt = utils.Time{Time: time.Now().UTC()}
	return result, true, nil
}

func (c ColumnConfiguration) IsEmpty() bool {
	trimmed := bytes.TrimSpace(c.Columns)
	switch string(trimmed) {
	case "", "{}", "[]", "null":
		return true
	}
	return false
}

func validateColumns(columns json.RawMessage) error {
	trimmed := bytes.TrimSpace(columns)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return ErrInvalidColumns
	}
	if !json.Valid(trimmed) {
		return ErrInvalidColumns
	}
	if trimmed[0] == '[' {
		var names []string
		if err := json.Unmarshal(trimmed, &names); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidColumns, err)
		}
	}
	return nil
}

func encodeColumns(columns any) (json.RawMessage, error) {
	encoded, err := json.Marshal(columns)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidColumns, err)
	}
	return encoded, nil
}
