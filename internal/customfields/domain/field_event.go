package domain

import (
	"time"

	"customfields-server/internal/infra/utils"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

type FieldEventType string

const (
	FieldCreated      FieldEventType = "field_created"
	FieldUpdated      FieldEventType = "field_updated"
	FieldPageMigrated FieldEventType = "field_page_migrated"
	FieldDeleted      FieldEventType = "field_deleted"
)

type FieldEvent struct {
	ID             shareddomain.ID
	Type           FieldEventType
	Field          FieldDefinition
	PreviousPage   *PageName
	MigratedValues int64
	OccurredAt     utils.Time
}

func NewFieldEvent(eventType FieldEventType, field FieldDefinition) FieldEvent {
	return FieldEvent{
		ID:         shareddomain.ID(utils.GenerateTimeOrderedUUID()),
		Type:       eventType,
		Field:      field,
		OccurredAt: utils.Time{Time: time.Now().UTC()},
	}
}

func NewPageMigratedEvent(field FieldDefinition, previous PageName, migrated int64) FieldEvent {
	event := NewFieldEvent(FieldPageMigrated, field)
	event.PreviousPage = &previous
	event.MigratedValues = migrated
	return event
}
