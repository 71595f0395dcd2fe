package internal

import (
	"encoding/json"
	"time"

	"customfields-server/internal/customfields/domain"
)

type ColumnConfigurationResponse struct {
	ModelName string          `json:"model_name"`
	PageName  string          `json:"page_name"`
	Columns   json.RawMessage `json:"columns"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type ColumnConfigurationSaveRequest struct {
	Columns json.RawMessage `json:"columns"`
}

func ToColumnConfigurationResponse(config domain.ColumnConfiguration) ColumnConfigurationResponse {
	return ColumnConfigurationResponse{
		ModelName: config.ModelName.String(),
		PageName:  config.PageName.String(),
		Columns:   config.Columns,
		UpdatedAt: config.UpdatedAt.Time,
	}
}
