package domain

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"customfields-server/internal/infra/utils"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

const DefaultPage PageName = "default"

var fieldNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type ModelName string

func (m ModelName) String() string {
	return string(m)
}

func NewModelName(value string) (ModelName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ErrModelNameRequired
	}
	return ModelName(trimmed), nil
}

type PageName string

func (p PageName) String() string {
	return string(p)
}

// NormalizePage maps an absent or blank page to DefaultPage and trims
// everything else.
func NormalizePage(value string) PageName {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return DefaultPage
	}
	return PageName(trimmed)
}

func ValidateFieldName(value string) (shareddomain.Name, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ErrFieldNameRequired
	}
	if !fieldNamePattern.MatchString(trimmed) {
		return "", ErrInvalidFieldName
	}
	return shareddomain.Name(trimmed), nil
}

type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// UnmarshalJSON accepts both the object form and a bare string, in which
// case the string is used as value and label.
func (o *FieldOption) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		o.Value = plain
		o.Label = plain
		return nil
	}

	type option FieldOption
	var decoded option
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*o = FieldOption(decoded)
	return nil
}

type FieldDefinition struct {
	ID              shareddomain.ID
	Version         shareddomain.Version
	Namespace       shareddomain.Namespace
	ModelName       ModelName
	PageName        PageName
	FieldName       shareddomain.Name
	DisplayName     shareddomain.DisplayName
	Kind            FieldKind
	IsRequired      bool
	IsSystemField   bool
	IsConfigurable  bool
	DisplayOrder    int
	ValidationRules json.RawMessage
	Options         []FieldOption
	DefaultValue    *string
	CreatedAt       utils.Time
	UpdatedAt       utils.Time
}

// FieldPatch carries the attributes of an update; nil members are left
// untouched.
type FieldPatch struct {
	PageName        *string
	DisplayName     *string
	Kind            *FieldKind
	IsRequired      *bool
	IsConfigurable  *bool
	DisplayOrder    *int
	ValidationRules *json.RawMessage
	Options         *[]FieldOption
	DefaultValue    **string
}

func (p FieldPatch) IsEmpty() bool {
	return p.PageName == nil && p.DisplayName == nil && p.Kind == nil &&
		p.IsRequired == nil && p.IsConfigurable == nil && p.DisplayOrder == nil &&
		p.ValidationRules == nil && p.Options == nil && p.DefaultValue == nil
}

// TargetPage returns the normalized page requested by the patch and whether
// it differs from the definition's current page.
func (p FieldPatch) TargetPage(current PageName) (PageName, bool) {
	if p.PageName == nil {
		return current, false
	}
	target := NormalizePage(*p.PageName)
	return target, target != current
}

// Apply returns a copy of the definition with the patch applied. The page is
// applied as well; callers are expected to migrate values before persisting.
func (fd FieldDefinition) Apply(patch FieldPatch) (FieldDefinition, error) {
	result := fd

	if patch.DisplayName != nil {
		displayName := strings.TrimSpace(*patch.DisplayName)
		if displayName == "" {
			return FieldDefinition{}, ErrDisplayNameRequired
		}
		result.DisplayName = shareddomain.DisplayName(displayName)
	}
	if patch.IsConfigurable != nil {
		if fd.IsSystemField && !*patch.IsConfigurable {
			return FieldDefinition{}, ErrSystemFieldLocked
		}
		result.IsConfigurable = *patch.IsConfigurable
	}
	if patch.Kind != nil {
		result.Kind = *patch.Kind
	}
	if patch.IsRequired != nil {
		result.IsRequired = *patch.IsRequired
	}
	if patch.DisplayOrder != nil {
		result.DisplayOrder = *patch.DisplayOrder
	}
	if patch.ValidationRules != nil {
		result.ValidationRules = *patch.ValidationRules
	}
	if patch.Options != nil {
		result.Options = *patch.Options
	}
	if patch.DefaultValue != nil {
		result.DefaultValue = *patch.DefaultValue
	}
	if page, changed := patch.TargetPage(fd.PageName); changed {
		result.PageName = page
	}

	if result.DefaultValue != nil && (patch.DefaultValue != nil || patch.Kind != nil || patch.Options != nil) {
		coerced, err := result.CoerceValue(result.DefaultValue)
		if err != nil {
			return FieldDefinition{}, err
		}
		result.DefaultValue = coerced
	}

	result.Version++
	result.UpdatedAt = utils.Time{Time: time.Now().UTC()}
	return result, nil
}

func (fd FieldDefinition) CoerceValue(raw *string) (*string, error) {
	return fd.Kind.Coerce(raw, fd.Options)
}

func NewFieldDefinitionBuilder() *fieldDefinitionBuilder {
	return &fieldDefinitionBuilder{}
}

type fieldDefinitionBuilder struct {
	actions []fieldDefinitionHandler
}

type fieldDefinitionHandler func(v *FieldDefinition) error

func (b *fieldDefinitionBuilder) WithNamespace(value shareddomain.Namespace) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.Namespace = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithModelName(value string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		model, err := NewModelName(value)
		if err != nil {
			return err
		}
		d.ModelName = model
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithPageName(value string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.PageName = NormalizePage(value)
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithFieldName(value string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		name, err := ValidateFieldName(value)
		if err != nil {
			return err
		}
		d.FieldName = name
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithDisplayName(value string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.DisplayName = shareddomain.DisplayName(strings.TrimSpace(value))
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithKind(value string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		kind, err := ParseFieldKind(value)
		if err != nil {
			return err
		}
		d.Kind = kind
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithRequired(value bool) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.IsRequired = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithSystemField(value bool) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.IsSystemField = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithConfigurable(value bool) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.IsConfigurable = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithDisplayOrder(value int) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.DisplayOrder = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithValidationRules(value json.RawMessage) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.ValidationRules = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithOptions(value []FieldOption) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.Options = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithDefaultValue(value *string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.DefaultValue = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) Build() (FieldDefinition, error) {
	now := utils.Time{Time: time.Now().UTC()}
	result := FieldDefinition{
		ID:             shareddomain.ID(utils.GenerateTimeOrderedUUID()),
		Version:        1,
		PageName:       DefaultPage,
		Kind:           FieldKindText,
		IsConfigurable: true,
		Options:        make([]FieldOption, 0),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return FieldDefinition{}, err
		}
	}

	if result.ModelName == "" {
		return FieldDefinition{}, ErrModelNameRequired
	}
	if result.FieldName == "" {
		return FieldDefinition{}, ErrFieldNameRequired
	}
	if result.DisplayName == "" {
		result.DisplayName = shareddomain.DisplayName(result.FieldName)
	}
	if result.DefaultValue != nil {
		coerced, err := result.CoerceValue(result.DefaultValue)
		if err != nil {
			return FieldDefinition{}, err
		}
		result.DefaultValue = coerced
	}

	return result, nil
}
