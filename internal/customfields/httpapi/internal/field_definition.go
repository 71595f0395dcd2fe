package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/customfields/usecases"
)

type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

type FieldDefinitionResponse struct {
	ID              string          `json:"id"`
	ModelName       string          `json:"model_name"`
	PageName        string          `json:"page_name"`
	FieldName       string          `json:"field_name"`
	DisplayName     string          `json:"display_name"`
	FieldType       string          `json:"field_type"`
	IsRequired      bool            `json:"is_required"`
	IsSystemField   bool            `json:"is_system_field"`
	IsConfigurable  bool            `json:"is_configurable"`
	DisplayOrder    int             `json:"display_order"`
	ValidationRules json.RawMessage `json:"validation_rules,omitempty"`
	FieldOptions    []FieldOption   `json:"field_options,omitempty"`
	DefaultValue    *string         `json:"default_value"`
	Version         int             `json:"version"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type FieldDefinitionListResponse struct {
	Data []FieldDefinitionResponse `json:"data"`
}

type FieldDefinitionCreateRequest struct {
	PageName        string               `json:"page_name"`
	FieldName       string               `json:"field_name"`
	DisplayName     string               `json:"display_name"`
	FieldType       string               `json:"field_type"`
	IsRequired      bool                 `json:"is_required"`
	IsSystemField   bool                 `json:"is_system_field"`
	IsConfigurable  *bool                `json:"is_configurable"`
	DisplayOrder    *int                 `json:"display_order"`
	ValidationRules json.RawMessage      `json:"validation_rules"`
	FieldOptions    []domain.FieldOption `json:"field_options"`
	DefaultValue    *string              `json:"default_value"`
}

// FieldDefinitionUpdateRequest keeps default_value raw so an explicit null
// can clear it while an absent key leaves it untouched.
type FieldDefinitionUpdateRequest struct {
	PageName        *string               `json:"page_name"`
	DisplayName     *string               `json:"display_name"`
	FieldType       *string               `json:"field_type"`
	IsRequired      *bool                 `json:"is_required"`
	IsConfigurable  *bool                 `json:"is_configurable"`
	DisplayOrder    *int                  `json:"display_order"`
	ValidationRules json.RawMessage       `json:"validation_rules"`
	FieldOptions    *[]domain.FieldOption `json:"field_options"`
	DefaultValue    json.RawMessage       `json:"default_value"`
}

func (r FieldDefinitionCreateRequest) ToSpec() usecases.FieldSpec {
	return usecases.FieldSpec{
		FieldName:       r.FieldName,
		DisplayName:     r.DisplayName,
		Kind:            r.FieldType,
		IsRequired:      r.IsRequired,
		IsSystemField:   r.IsSystemField,
		IsConfigurable:  r.IsConfigurable,
		DisplayOrder:    r.DisplayOrder,
		ValidationRules: r.ValidationRules,
		Options:         r.FieldOptions,
		DefaultValue:    r.DefaultValue,
	}
}

func (r FieldDefinitionUpdateRequest) ToPatch() (domain.FieldPatch, error) {
	patch := domain.FieldPatch{
		PageName:       r.PageName,
		DisplayName:    r.DisplayName,
		IsRequired:     r.IsRequired,
		IsConfigurable: r.IsConfigurable,
		DisplayOrder:   r.DisplayOrder,
		Options:        r.FieldOptions,
	}

	if r.FieldType != nil {
		kind, err := domain.ParseFieldKind(*r.FieldType)
		if err != nil {
			return domain.FieldPatch{}, err
		}
		patch.Kind = &kind
	}

	if len(r.ValidationRules) > 0 {
		rules := r.ValidationRules
		if isNull(rules) {
			rules = nil
		}
		patch.ValidationRules = &rules
	}

	if len(r.DefaultValue) > 0 {
		var value *string
		if !isNull(r.DefaultValue) {
			var decoded string
			if err := json.Unmarshal(r.DefaultValue, &decoded); err != nil {
				return domain.FieldPatch{}, fmt.Errorf("default_value must be a string or null: %w", err)
			}
			value = &decoded
		}
		patch.DefaultValue = &value
	}

	return patch, nil
}

func ToFieldDefinitionResponse(field domain.FieldDefinition) FieldDefinitionResponse {
	options := make([]FieldOption, len(field.Options))
	for i, option := range field.Options {
		options[i] = FieldOption{Value: option.Value, Label: option.Label}
	}

	return FieldDefinitionResponse{
		ID:              field.ID.String(),
		ModelName:       field.ModelName.String(),
		PageName:        field.PageName.String(),
		FieldName:       field.FieldName.String(),
		DisplayName:     string(field.DisplayName),
		FieldType:       string(field.Kind),
		IsRequired:      field.IsRequired,
		IsSystemField:   field.IsSystemField,
		IsConfigurable:  field.IsConfigurable,
		DisplayOrder:    field.DisplayOrder,
		ValidationRules: field.ValidationRules,
		FieldOptions:    options,
		DefaultValue:    field.DefaultValue,
		Version:         int(field.Version),
		CreatedAt:       field.CreatedAt.Time,
		UpdatedAt:       field.UpdatedAt.Time,
	}
}

func ToFieldDefinitionListResponse(fields []domain.FieldDefinition) FieldDefinitionListResponse {
	data := make([]FieldDefinitionResponse, len(fields))
	for i, field := range fields {
		data[i] = ToFieldDefinitionResponse(field)
	}
	return FieldDefinitionListResponse{Data: data}
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
