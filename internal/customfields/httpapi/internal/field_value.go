package internal

import "customfields-server/internal/customfields/domain"

type FieldValuesResponse struct {
	ModelName string             `json:"model_name"`
	RecordID  string             `json:"record_id"`
	PageName  string             `json:"page_name"`
	Values    map[string]*string `json:"values"`
}

type FieldValuesSaveRequest struct {
	Values map[string]*string `json:"values"`
}

type DeletedValuesResponse struct {
	Deleted int64 `json:"deleted"`
}

type DeduplicationResponse struct {
	Removed int64 `json:"removed"`
}

func ToFieldValuesResponse(model, record string, page domain.PageName, values domain.FieldValues) FieldValuesResponse {
	return FieldValuesResponse{
		ModelName: model,
		RecordID:  record,
		PageName:  page.String(),
		Values:    values,
	}
}
