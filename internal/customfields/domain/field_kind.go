package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownFieldKind = errors.New("unknown field kind")
	ErrInvalidValue     = errors.New("invalid field value")
	ErrComputedField    = errors.New("computed field does not accept input")
)

// FieldKind is the closed set of supported custom field types. Values are
// always stored as text; each kind owns the conversion between that text and
// its typed representation.
type FieldKind string

const (
	FieldKindText       FieldKind = "text"
	FieldKindNumber     FieldKind = "number"
	FieldKindDate       FieldKind = "date"
	FieldKindSelect     FieldKind = "select"
	FieldKindCheckbox   FieldKind = "checkbox"
	FieldKindCalculated FieldKind = "calculated"
)

const DateLayout = time.DateOnly

var FieldKinds = []FieldKind{
	FieldKindText,
	FieldKindNumber,
	FieldKindDate,
	FieldKindSelect,
	FieldKindCheckbox,
	FieldKindCalculated,
}

func ParseFieldKind(value string) (FieldKind, error) {
	kind := FieldKind(strings.ToLower(strings.TrimSpace(value)))
	if !slices.Contains(FieldKinds, kind) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFieldKind, value)
	}
	return kind, nil
}

func (k FieldKind) String() string {
	return string(k)
}

// Coerce validates raw against the kind and returns its canonical stored
// text. A nil raw value stays nil (explicit empty value).
func (k FieldKind) Coerce(raw *string, options []FieldOption) (*string, error) {
	if raw == nil {
		return nil, nil
	}

	value := *raw
	var canonical string

	switch k {
	case FieldKindText, FieldKindCalculated:
		canonical = value
	case FieldKindNumber:
		number, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, value)
		}
		canonical = number.String()
	case FieldKindDate:
		date, err := parseDate(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a date", ErrInvalidValue, value)
		}
		canonical = date.Format(DateLayout)
	case FieldKindSelect:
		canonical = strings.TrimSpace(value)
		if len(options) > 0 && !containsOption(options, canonical) {
			return nil, fmt.Errorf("%w: %q is not an allowed option", ErrInvalidValue, value)
		}
	case FieldKindCheckbox:
		checked, err := parseCheckbox(value)
		if err != nil {
			return nil, err
		}
		canonical = fmt.Sprintf("%t", checked)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFieldKind, string(k))
	}

	return &canonical, nil
}

// Decode turns stored text into its typed value: decimal.Decimal for numbers,
// time.Time for dates, bool for checkboxes and string otherwise.
func (k FieldKind) Decode(stored *string) (any, error) {
	if stored == nil {
		return nil, nil
	}

	switch k {
	case FieldKindText, FieldKindCalculated, FieldKindSelect:
		return *stored, nil
	case FieldKindNumber:
		number, err := decimal.NewFromString(*stored)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, *stored)
		}
		return number, nil
	case FieldKindDate:
		date, err := parseDate(*stored)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a date", ErrInvalidValue, *stored)
		}
		return date, nil
	case FieldKindCheckbox:
		return parseCheckbox(*stored)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFieldKind, string(k))
	}
}

// IsComputed reports kinds whose values are produced outside of user input.
func (k FieldKind) IsComputed() bool {
	return k == FieldKindCalculated
}

func parseDate(value string) (time.Time, error) {
	if date, err := time.Parse(DateLayout, value); err == nil {
		return date, nil
	}

	moment, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(moment.Year(), moment.Month(), moment.Day(), 0, 0, 0, 0, time.UTC), nil
}

func parseCheckbox(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off", "":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not a checkbox value", ErrInvalidValue, value)
	}
}

func containsOption(options []FieldOption, value string) bool {
	for _, option := range options {
		if option.Value == value {
			return true
		}
	}
	return false
}
