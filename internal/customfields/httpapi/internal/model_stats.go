package internal

import "customfields-server/internal/customfields/domain"

type RecommendationResponse struct {
	Kind     string  `json:"kind"`
	PageName *string `json:"page_name,omitempty"`
	Message  string  `json:"message"`
}

type ModelStatsResponse struct {
	ModelName       string                   `json:"model_name"`
	TotalValues     int64                    `json:"total_values"`
	TotalFields     int64                    `json:"total_fields"`
	ValuesByPage    map[string]int64         `json:"values_by_page"`
	FieldsByPage    map[string]int64         `json:"fields_by_page"`
	Recommendations []RecommendationResponse `json:"recommendations"`
}

type ModelStatsListResponse struct {
	Data []ModelStatsResponse `json:"data"`
}

func ToModelStatsResponse(stats domain.ModelStats) ModelStatsResponse {
	recommendations := make([]RecommendationResponse, len(stats.Recommendations))
	for i, recommendation := range stats.Recommendations {
		recommendations[i] = RecommendationResponse{
			Kind:    string(recommendation.Kind),
			Message: recommendation.Message,
		}
		if recommendation.Page != nil {
			page := recommendation.Page.String()
			recommendations[i].PageName = &page
		}
	}

	return ModelStatsResponse{
		ModelName:       stats.ModelName.String(),
		TotalValues:     stats.TotalValues,
		TotalFields:     stats.TotalFields,
		ValuesByPage:    pageCounts(stats.ValuesByPage),
		FieldsByPage:    pageCounts(stats.FieldsByPage),
		Recommendations: recommendations,
	}
}

func ToModelStatsListResponse(stats []domain.ModelStats) ModelStatsListResponse {
	data := make([]ModelStatsResponse, len(stats))
	for i, model := range stats {
		data[i] = ToModelStatsResponse(model)
	}
	return ModelStatsListResponse{Data: data}
}

func pageCounts(counts map[domain.PageName]int64) map[string]int64 {
	result := make(map[string]int64, len(counts))
	for page, count := range counts {
		result[page.String()] = count
	}
	return result
}
