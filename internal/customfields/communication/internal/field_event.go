package internal

import (
	"encoding/json"
	"time"

	"customfields-server/internal/customfields/domain"
)

type FieldEvent struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	Namespace       string          `json:"namespace"`
	FieldID         string          `json:"field_id"`
	ModelName       string          `json:"model_name"`
	PageName        string          `json:"page_name"`
	PreviousPage    *string         `json:"previous_page,omitempty"`
	FieldName       string          `json:"field_name"`
	FieldType       string          `json:"field_type"`
	Version         int             `json:"version"`
	IsSystemField   bool            `json:"is_system_field"`
	ValidationRules json.RawMessage `json:"validation_rules,omitempty"`
	MigratedValues  int64           `json:"migrated_values,omitempty"`
	OccurredAt      time.Time       `json:"occurred_at"`
}

func FromFieldEvent(event domain.FieldEvent) FieldEvent {
	var previous *string
	if event.PreviousPage != nil {
		value := event.PreviousPage.String()
		previous = &value
	}

	return FieldEvent{
		ID:              event.ID.String(),
		Type:            string(event.Type),
		Namespace:       event.Field.Namespace.String(),
		FieldID:         event.Field.ID.String(),
		ModelName:       event.Field.ModelName.String(),
		PageName:        event.Field.PageName.String(),
		PreviousPage:    previous,
		FieldName:       event.Field.FieldName.String(),
		FieldType:       event.Field.Kind.String(),
		Version:         int(event.Field.Version),
		IsSystemField:   event.Field.IsSystemField,
		ValidationRules: event.Field.ValidationRules,
		MigratedValues:  event.MigratedValues,
		OccurredAt:      event.OccurredAt.Time,
	}
}
