package domain

import (
	"sort"
	"strings"
	"time"

	"customfields-server/internal/infra/utils"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

type RecordID string

func (r RecordID) String() string {
	return string(r)
}

func NewRecordID(value string) (RecordID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ErrRecordIDRequired
	}
	return RecordID(trimmed), nil
}

// FieldValue is the stored text of one field for one record under one page.
// A nil Value is an explicit empty value, distinct from an absent row.
type FieldValue struct {
	ID        shareddomain.ID
	Namespace shareddomain.Namespace
	ModelName ModelName
	PageName  PageName
	RecordID  RecordID
	FieldName shareddomain.Name
	Value     *string
	CreatedAt utils.Time
	UpdatedAt utils.Time
}

// FieldValues maps field names to stored values for one record and page.
type FieldValues map[string]*string

func NewFieldValue(ns shareddomain.Namespace, model ModelName, page PageName, record RecordID, field string, value *string) FieldValue {
	now := utils.Time{Time: time.Now().UTC()}
	return FieldValue{
		ID:        shareddomain.ID(utils.GenerateTimeOrderedUUID()),
		Namespace: ns,
		ModelName: model,
		PageName:  page,
		RecordID:  record,
		FieldName: shareddomain.Name(field),
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewerThan orders values by last write, falling back to the time-ordered
// id when two rows share a timestamp.
func (fv FieldValue) NewerThan(other FieldValue) bool {
	if !fv.UpdatedAt.Equal(other.UpdatedAt.Time) {
		return fv.UpdatedAt.After(other.UpdatedAt.Time)
	}
	return fv.ID > other.ID
}

// DuplicateSet is one field of a record holding more than one row: the row
// to keep and the rows to remove.
type DuplicateSet struct {
	Keep   FieldValue
	Remove []FieldValue
}

// GroupDuplicates groups rows by field name and returns one set for every
// field with more than one row. Sets are ordered by field name.
func GroupDuplicates(values []FieldValue) []DuplicateSet {
	groups := make(map[shareddomain.Name][]FieldValue)
	for _, value := range values {
		groups[value.FieldName] = append(groups[value.FieldName], value)
	}

	fields := make([]string, 0, len(groups))
	for field := range groups {
		fields = append(fields, field.String())
	}
	sort.Strings(fields)

	sets := make([]DuplicateSet, 0)
	for _, field := range fields {
		group := groups[shareddomain.Name(field)]
		if len(group) < 2 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].NewerThan(group[j])
		})
		sets = append(sets, DuplicateSet{Keep: group[0], Remove: group[1:]})
	}
	return sets
}

// SelectDuplicates returns, for every field, all rows except the most recent
// one.
func SelectDuplicates(values []FieldValue) []FieldValue {
	losers := make([]FieldValue, 0)
	for _, set := range GroupDuplicates(values) {
		losers = append(losers, set.Remove...)
	}
	return losers
}

func IDs(values []FieldValue) []shareddomain.ID {
	ids := make([]shareddomain.ID, len(values))
	for i, value := range values {
		ids[i] = value.ID
	}
	return ids
}
