package internal

import (
	"encoding/json"
	"time"

	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/infra/utils"
	shareddomain "customfields-server/internal/shared_kernel/domain"

	"gorm.io/datatypes"
)

type ColumnConfiguration struct {
	Namespace string         `json:"namespace" gorm:"primaryKey"`
	ModelName string         `json:"model_name" gorm:"primaryKey"`
	PageName  string         `json:"page_name" gorm:"primaryKey"`
	Columns   datatypes.JSON `json:"columns" gorm:"not null"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (ColumnConfiguration) TableName() string {
	return "custom_field_column_configurations"
}

func (e ColumnConfiguration) ToDomain() domain.ColumnConfiguration {
	return domain.ColumnConfiguration{
		Namespace: shareddomain.Namespace(e.Namespace),
		ModelName: domain.ModelName(e.ModelName),
		PageName:  domain.PageName(e.PageName),
		Columns:   json.RawMessage(e.Columns),
		UpdatedAt: utils.Time{Time: e.UpdatedAt},
	}
}

func FromColumnConfiguration(config domain.ColumnConfiguration) ColumnConfiguration {
	return ColumnConfiguration{
		Namespace: config.Namespace.String(),
		ModelName: config.ModelName.String(),
		PageName:  config.PageName.String(),
		Columns:   datatypes.JSON(config.Columns),
		UpdatedAt: config.UpdatedAt.Time,
	}
}

// PageCount is the projection of grouped count queries.
type PageCount struct {
	PageName string
	Total    int64
}
