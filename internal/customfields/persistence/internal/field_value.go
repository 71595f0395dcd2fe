package internal

import (
	"time"

	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/infra/utils"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

// FieldValue rows are looked up by record (dedup, cross-page invariant) and
// by page (reads, page clearing, migration).
type FieldValue struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Namespace  string    `json:"namespace" gorm:"not null;index:idx_custom_value_record,priority:1;index:idx_custom_value_page,priority:1"`
	ModelName  string    `json:"model_name" gorm:"not null;index:idx_custom_value_record,priority:2;index:idx_custom_value_page,priority:2"`
	RecordID   string    `json:"record_id" gorm:"not null;index:idx_custom_value_record,priority:3;index:idx_custom_value_page,priority:4"`
	FieldName  string    `json:"field_name" gorm:"not null;index:idx_custom_value_record,priority:4;index:idx_custom_value_page,priority:5"`
	PageName   string    `json:"page_name" gorm:"not null;index:idx_custom_value_page,priority:3"`
	FieldValue *string   `json:"field_value"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"index"`
}

func (FieldValue) TableName() string {
	return "custom_field_values"
}

func (e FieldValue) ToDomain() domain.FieldValue {
	return domain.FieldValue{
		ID:        shareddomain.ID(e.ID),
		Namespace: shareddomain.Namespace(e.Namespace),
		ModelName: domain.ModelName(e.ModelName),
		PageName:  domain.PageName(e.PageName),
		RecordID:  domain.RecordID(e.RecordID),
		FieldName: shareddomain.Name(e.FieldName),
		Value:     e.FieldValue,
		CreatedAt: utils.Time{Time: e.CreatedAt},
		UpdatedAt: utils.Time{Time: e.UpdatedAt},
	}
}

func FromFieldValue(value domain.FieldValue) FieldValue {
	return FieldValue{
		ID:         value.ID.String(),
		Namespace:  value.Namespace.String(),
		ModelName:  value.ModelName.String(),
		RecordID:   value.RecordID.String(),
		FieldName:  value.FieldName.String(),
		PageName:   value.PageName.String(),
		FieldValue: value.Value,
		CreatedAt:  value.CreatedAt.Time,
		UpdatedAt:  value.UpdatedAt.Time,
	}
}

func FieldValuesToDomain(entities []FieldValue) []domain.FieldValue {
	result := make([]domain.FieldValue, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}
	return result
}
