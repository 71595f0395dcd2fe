package domain

import (
	"fmt"
	"sort"
)

const (
	DefaultRowThreshold           int64 = 100000
	DefaultFieldsPerPageThreshold int64 = 50
)

type PartitioningThresholds struct {
	RowThreshold           int64
	FieldsPerPageThreshold int64
}

func DefaultPartitioningThresholds() PartitioningThresholds {
	return PartitioningThresholds{
		RowThreshold:           DefaultRowThreshold,
		FieldsPerPageThreshold: DefaultFieldsPerPageThreshold,
	}
}

type RecommendationKind string

const (
	RecommendationPartitioning RecommendationKind = "partitioning"
	RecommendationFieldDesign  RecommendationKind = "field_design"
)

type Recommendation struct {
	Kind    RecommendationKind
	Page    *PageName
	Message string
}

type ModelStats struct {
	ModelName       ModelName
	TotalValues     int64
	TotalFields     int64
	ValuesByPage    map[PageName]int64
	FieldsByPage    map[PageName]int64
	Recommendations []Recommendation
}

// Evaluate fills Recommendations. A threshold is exceeded only when the
// observed count is strictly greater; non-positive thresholds are disabled.
func (s ModelStats) Evaluate(thresholds PartitioningThresholds) ModelStats {
	result := s
	result.Recommendations = make([]Recommendation, 0)

	if thresholds.RowThreshold > 0 && s.TotalValues > thresholds.RowThreshold {
		message := fmt.Sprintf(
			"model %q holds %d field values (threshold %d): consider per-model physical partitioning",
			s.ModelName, s.TotalValues, thresholds.RowThreshold,
		)
		result.Recommendations = append(result.Recommendations, Recommendation{
			Kind:    RecommendationPartitioning,
			Message: message,
		})
	}

	if thresholds.FieldsPerPageThreshold > 0 {
		for _, page := range SortedPages(s.FieldsByPage) {
			count := s.FieldsByPage[page]
			if count <= thresholds.FieldsPerPageThreshold {
				continue
			}
			message := fmt.Sprintf(
				"page %q of model %q defines %d fields (threshold %d): consider a field-design review",
				page, s.ModelName, count, thresholds.FieldsPerPageThreshold,
			)
			result.Recommendations = append(result.Recommendations, Recommendation{
				Kind:    RecommendationFieldDesign,
				Page:    &page,
				Message: message,
			})
		}
	}

	return result
}

func (s ModelStats) HasRecommendations() bool {
	return len(s.Recommendations) > 0
}

// SortedPages returns the pages present in any of counts, in name order.
func SortedPages(counts ...map[PageName]int64) []PageName {
	seen := make(map[PageName]struct{})
	pages := make([]PageName, 0)
	for _, byPage := range counts {
		for page := range byPage {
			if _, ok := seen[page]; ok {
				continue
			}
			seen[page] = struct{}{}
			pages = append(pages, page)
		}
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i] < pages[j] })
	return pages
}
