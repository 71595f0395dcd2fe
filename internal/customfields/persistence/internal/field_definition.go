package internal

import (
	"encoding/json"
	"time"

	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/infra/utils"
	shareddomain "customfields-server/internal/shared_kernel/domain"

	"gorm.io/datatypes"
)

type FieldDefinition struct {
	ID              string                           `json:"id" gorm:"primaryKey"`
	Version         int                              `json:"version"`
	Namespace       string                           `json:"namespace" gorm:"not null;uniqueIndex:idx_custom_field_identity,priority:1"`
	ModelName       string                           `json:"model_name" gorm:"not null;uniqueIndex:idx_custom_field_identity,priority:2"`
	PageName        string                           `json:"page_name" gorm:"not null;uniqueIndex:idx_custom_field_identity,priority:3"`
	FieldName       string                           `json:"field_name" gorm:"not null;uniqueIndex:idx_custom_field_identity,priority:4"`
	DisplayName     string                           `json:"display_name" gorm:"not null"`
	FieldType       string                           `json:"field_type" gorm:"not null"`
	IsRequired      bool                             `json:"is_required"`
	IsSystemField   bool                             `json:"is_system_field"`
	IsConfigurable  bool                             `json:"is_configurable"`
	DisplayOrder    int                              `json:"display_order"`
	ValidationRules datatypes.JSON                   `json:"validation_rules"`
	FieldOptions    datatypes.JSONSlice[FieldOption] `json:"field_options"`
	DefaultValue    *string                          `json:"default_value"`
	CreatedAt       time.Time                        `json:"created_at"`
	UpdatedAt       time.Time                        `json:"updated_at"`
}

func (FieldDefinition) TableName() string {
	return "custom_field_definitions"
}

type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

func (e FieldDefinition) ToDomain() domain.FieldDefinition {
	options := make([]domain.FieldOption, len(e.FieldOptions))
	for i, option := range e.FieldOptions {
		options[i] = domain.FieldOption{Value: option.Value, Label: option.Label}
	}

	var rules json.RawMessage
	if len(e.ValidationRules) > 0 && string(e.ValidationRules) != "null" {
		rules = json.RawMessage(e.ValidationRules)
	}

	return domain.FieldDefinition{
		ID:              shareddomain.ID(e.ID),
		Version:         shareddomain.Version(e.Version),
		Namespace:       shareddomain.Namespace(e.Namespace),
		ModelName:       domain.ModelName(e.ModelName),
		PageName:        domain.PageName(e.PageName),
		FieldName:       shareddomain.Name(e.FieldName),
		DisplayName:     shareddomain.DisplayName(e.DisplayName),
		Kind:            domain.FieldKind(e.FieldType),
		IsRequired:      e.IsRequired,
		IsSystemField:   e.IsSystemField,
		IsConfigurable:  e.IsConfigurable,
		DisplayOrder:    e.DisplayOrder,
		ValidationRules: rules,
		Options:         options,
		DefaultValue:    e.DefaultValue,
		CreatedAt:       utils.Time{Time: e.CreatedAt},
		UpdatedAt:       utils.Time{Time: e.UpdatedAt},
	}
}

func FromFieldDefinition(field domain.FieldDefinition) FieldDefinition {
	options := make(datatypes.JSONSlice[FieldOption], len(field.Options))
	for i, option := range field.Options {
		options[i] = FieldOption{Value: option.Value, Label: option.Label}
	}

	return FieldDefinition{
		ID:              field.ID.String(),
		Version:         int(field.Version),
		Namespace:       field.Namespace.String(),
		ModelName:       field.ModelName.String(),
		PageName:        field.PageName.String(),
		FieldName:       field.FieldName.String(),
		DisplayName:     string(field.DisplayName),
		FieldType:       field.Kind.String(),
		IsRequired:      field.IsRequired,
		IsSystemField:   field.IsSystemField,
		IsConfigurable:  field.IsConfigurable,
		DisplayOrder:    field.DisplayOrder,
		ValidationRules: datatypes.JSON(field.ValidationRules),
		FieldOptions:    options,
		DefaultValue:    field.DefaultValue,
		CreatedAt:       field.CreatedAt.Time,
		UpdatedAt:       field.UpdatedAt.Time,
	}
}
