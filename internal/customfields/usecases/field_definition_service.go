package usecases

//go:generate mockgen -source=./field_definition_service.go -destination=../../../test/unit/doubles/customfields/usecases/field_definition_service_mock.go -package=usecases -mock_names=FieldDefinitionService=MockFieldDefinitionService,ColumnReferenceCleaner=MockColumnReferenceCleaner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/infra/cache"
	shareddomain "customfields-server/internal/shared_kernel/domain"

	"github.com/vmihailenco/msgpack/v5"
	"go.opentelemetry.io/otel/attribute"
)

const _defaultDefinitionCacheTTL = 5 * time.Minute

type DefinitionCacheTTL time.Duration

// FieldSpec describes a field to create. Nil members take their defaults.
type FieldSpec struct {
	FieldName       string
	DisplayName     string
	Kind            string
	IsRequired      bool
	IsSystemField   bool
	IsConfigurable  *bool
	DisplayOrder    *int
	ValidationRules json.RawMessage
	Options         []domain.FieldOption
	DefaultValue    *string
}

type FieldDefinitionService interface {
	ListFields(ctx context.Context, ns shareddomain.Namespace, model string, page *string) ([]domain.FieldDefinition, error)
	GetField(ctx context.Context, ns shareddomain.Namespace, id shareddomain.ID) (domain.FieldDefinition, error)
	CreateField(ctx context.Context, ns shareddomain.Namespace, model, page string, spec FieldSpec) (domain.FieldDefinition, error)
	UpdateField(ctx context.Context, ns shareddomain.Namespace, id shareddomain.ID, patch domain.FieldPatch) (domain.FieldDefinition, error)
	DeleteField(ctx context.Context, ns shareddomain.Namespace, id shareddomain.ID) (bool, error)
	CoerceValues(ctx context.Context, ns shareddomain.Namespace, model, page string, values domain.FieldValues) (domain.FieldValues, error)
}

type ColumnReferenceCleaner interface {
	RemoveField(ctx context.Context, ns shareddomain.Namespace, model domain.ModelName, field shareddomain.Name)
}

func NewFieldDefinitionService(
	repository FieldDefinitionRepository,
	cleaner ColumnReferenceCleaner,
	publisher FieldEventPublisher,
	definitionCache cache.Cache,
	cacheTTL DefinitionCacheTTL,
) *SimpleFieldDefinitionService {
	ttl := time.Duration(cacheTTL)
	if ttl <= 0 {
		ttl = _defaultDefinitionCacheTTL
	}
	if definitionCache == nil {
		definitionCache = cache.NoopCache{}
	}

	return &SimpleFieldDefinitionService{
		repository: repository,
		cleaner:    cleaner,
		publisher:  publisher,
		cache:      definitionCache,
		cacheTTL:   ttl,
		generation: make(map[string]uint64),
		counters:   newCounters(_metricKeyValuesMigrated),
	}
}

var _ FieldDefinitionService = (*SimpleFieldDefinitionService)(nil)

type SimpleFieldDefinitionService struct {
	repository FieldDefinitionRepository
	cleaner    ColumnReferenceCleaner
	publisher  FieldEventPublisher
	cache      cache.Cache
	cacheTTL   time.Duration
	counters   counters

	// generation counts invalidations per cache key; a load that overlapped
	// one must not stay cached.
	mu         sync.Mutex
	generation map[string]uint64
}

func (s *SimpleFieldDefinitionService) ListFields(
	ctx context.Context,
	ns shareddomain.Namespace,
	model string,
	page *string,
) ([]domain.FieldDefinition, error) {
	modelName, err := domain.NewModelName(model)
	if err != nil {
		return nil, validationError(err)
	}

	fields, err := s.fieldsOfModel(ctx, ns, modelName)
	if err != nil {
		return nil, err
	}

	if page == nil {
		return fields, nil
	}

	pageName := domain.NormalizePage(*page)
	result := make([]domain.FieldDefinition, 0)
	for _, field := range fields {
		if field.PageName == pageName {
			result = append(result, field)
		}
	}
	slices.SortStableFunc(result, func(a, b domain.FieldDefinition) int {
		return a.DisplayOrder - b.DisplayOrder
	})
	return result, nil
}

func (s *SimpleFieldDefinitionService) GetField(ctx context.Context, ns shareddomain.Namespace, id shareddomain.ID) (domain.FieldDefinition, error) {
	field, err := s.repository.GetByID(ctx, ns, id)
	if err != nil {
		if errors.Is(err, ErrFieldNotFound) {
			return domain.FieldDefinition{}, ErrFieldNotFound
		}
		slog.Error("getting field definition", slog.String("error", err.Error()))
		return domain.FieldDefinition{}, storageError("getting field definition", err)
	}
	return field, nil
}

func (s *SimpleFieldDefinitionService) CreateField(
	ctx context.Context,
	ns shareddomain.Namespace,
	model, page string,
	spec FieldSpec,
) (domain.FieldDefinition, error) {
	builder := domain.NewFieldDefinitionBuilder().
		WithNamespace(ns).
		WithModelName(model).
		WithPageName(page).
		WithFieldName(spec.FieldName).
		WithDisplayName(spec.DisplayName).
		WithRequired(spec.IsRequired).
		WithSystemField(spec.IsSystemField).
		WithValidationRules(spec.ValidationRules).
		WithDefaultValue(spec.DefaultValue)

	if spec.Kind != "" {
		builder = builder.WithKind(spec.Kind)
	}
	if spec.IsConfigurable != nil {
		builder = builder.WithConfigurable(*spec.IsConfigurable)
	}
	if spec.Options != nil {
		builder = builder.WithOptions(spec.Options)
	}
	if spec.DisplayOrder != nil {
		builder = builder.WithDisplayOrder(*spec.DisplayOrder)
	}

	field, err := builder.Build()
	if err != nil {
		return domain.FieldDefinition{}, validationError(err)
	}
	if field.IsSystemField && !field.IsConfigurable {
		return domain.FieldDefinition{}, validationError(domain.ErrSystemFieldLocked)
	}

	if spec.DisplayOrder == nil {
		next, err := s.repository.NextDisplayOrder(ctx, ns, field.ModelName, field.PageName)
		if err != nil {
			slog.Error("computing display order", slog.String("error", err.Error()))
			return domain.FieldDefinition{}, storageError("computing display order", err)
		}
		field.DisplayOrder = next
	}

	err = s.repository.Create(ctx, field)
	if errors.Is(err, ErrDuplicateField) {
		return domain.FieldDefinition{}, fmt.Errorf("%w: %s.%s on page %s", ErrDuplicateField, field.ModelName, field.FieldName, field.PageName)
	}
	if err != nil {
		slog.Error("creating field definition", slog.String("error", err.Error()))
		return domain.FieldDefinition{}, storageError("creating field definition", err)
	}

	s.invalidate(ctx, ns, field.ModelName)

	slog.Info("field definition created",
		slog.String("namespace", ns.String()),
		slog.String("model", field.ModelName.String()),
		slog.String("page", field.PageName.String()),
		slog.String("field", field.FieldName.String()))

	s.publish(ctx, domain.NewFieldEvent(domain.FieldCreated, field))
	return field, nil
}

func (s *SimpleFieldDefinitionService) UpdateField(
	ctx context.Context,
	ns shareddomain.Namespace,
	id shareddomain.ID,
	patch domain.FieldPatch,
) (domain.FieldDefinition, error) {
	current, err := s.GetField(ctx, ns, id)
	if err != nil {
		return domain.FieldDefinition{}, err
	}

	if patch.IsEmpty() {
		return current, nil
	}

	updated, err := current.Apply(patch)
	if err != nil {
		return domain.FieldDefinition{}, validationError(err)
	}

	migrated, err := s.repository.Update(ctx, updated, current.PageName)
	if errors.Is(err, ErrDuplicateField) {
		return domain.FieldDefinition{}, fmt.Errorf("%w: %s.%s on page %s", ErrDuplicateField, updated.ModelName, updated.FieldName, updated.PageName)
	}
	if errors.Is(err, ErrFieldNotFound) {
		return domain.FieldDefinition{}, ErrFieldNotFound
	}
	if err != nil {
		slog.Error("updating field definition", slog.String("error", err.Error()))
		return domain.FieldDefinition{}, storageError("updating field definition", err)
	}

	s.invalidate(ctx, ns, updated.ModelName)

	slog.Info("field definition updated",
		slog.String("namespace", ns.String()),
		slog.String("model", updated.ModelName.String()),
		slog.String("field", updated.FieldName.String()))
	s.publish(ctx, domain.NewFieldEvent(domain.FieldUpdated, updated))

	if updated.PageName != current.PageName {
		slog.Info("field values migrated to new page",
			slog.String("namespace", ns.String()),
			slog.String("model", updated.ModelName.String()),
			slog.String("field", updated.FieldName.String()),
			slog.String("from", current.PageName.String()),
			slog.String("to", updated.PageName.String()),
			slog.Int64("values", migrated))
		s.counters.add(ctx, _metricKeyValuesMigrated, migrated,
			attribute.String("namespace", ns.String()),
			attribute.String("model", updated.ModelName.String()))
		s.publish(ctx, domain.NewPageMigratedEvent(updated, current.PageName, migrated))
	}

	return updated, nil
}

func (s *SimpleFieldDefinitionService) DeleteField(ctx context.Context, ns shareddomain.Namespace, id shareddomain.ID) (bool, error) {
	field, err := s.GetField(ctx, ns, id)
	if errors.Is(err, ErrFieldNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if field.IsSystemField {
		return false, fmt.Errorf("%w: %s", ErrSystemField, field.FieldName)
	}

	removed, err := s.repository.Delete(ctx, field)
	if errors.Is(err, ErrFieldNotFound) {
		return false, nil
	}
	if err != nil {
		slog.Error("deleting field definition", slog.String("error", err.Error()))
		return false, storageError("deleting field definition", err)
	}

	s.invalidate(ctx, ns, field.ModelName)
	s.cleaner.RemoveField(ctx, ns, field.ModelName, field.FieldName)

	slog.Info("field definition deleted",
		slog.String("namespace", ns.String()),
		slog.String("model", field.ModelName.String()),
		slog.String("field", field.FieldName.String()),
		slog.Int64("values_removed", removed))

	s.publish(ctx, domain.NewFieldEvent(domain.FieldDeleted, field))
	return true, nil
}

// CoerceValues converts raw input into the stored text of each field on the
// page, rejecting names without a definition.
func (s *SimpleFieldDefinitionService) CoerceValues(
	ctx context.Context,
	ns shareddomain.Namespace,
	model, page string,
	values domain.FieldValues,
) (domain.FieldValues, error) {
	fields, err := s.ListFields(ctx, ns, model, &page)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]domain.FieldDefinition, len(fields))
	for _, field := range fields {
		byName[field.FieldName.String()] = field
	}

	result := make(domain.FieldValues, len(values))
	for name, raw := range values {
		field, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: field %q is not defined on page %q", ErrValidation, name, domain.NormalizePage(page))
		}
		if raw != nil && field.Kind.IsComputed() {
			return nil, fmt.Errorf("%w: field %q: %w", ErrValidation, name, domain.ErrComputedField)
		}
		coerced, err := field.CoerceValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrValidation, name, err)
		}
		result[name] = coerced
	}
	return result, nil
}

func (s *SimpleFieldDefinitionService) fieldsOfModel(
	ctx context.Context,
	ns shareddomain.Namespace,
	model domain.ModelName,
) ([]domain.FieldDefinition, error) {
	key := definitionsCacheKey(ns, model)
	loaded, before := false, uint64(0)
	encoded, err := s.cache.GetOrSet(ctx, key, s.cacheTTL, func() ([]byte, error) {
		loaded, before = true, s.generationOf(key)
		fields, err := s.repository.FindByModel(ctx, ns, model)
		if err != nil {
			return nil, err
		}
		return msgpack.Marshal(fields)
	})
	if err != nil {
		slog.Error("listing field definitions", slog.String("error", err.Error()))
		return nil, storageError("listing field definitions", err)
	}
	if loaded && s.generationOf(key) != before {
		// the definitions changed while loading; drop what was just cached
		s.cache.Delete(ctx, key)
	}

	fields := make([]domain.FieldDefinition, 0)
	if err := msgpack.Unmarshal(encoded, &fields); err != nil {
		s.invalidate(ctx, ns, model)
		slog.Error("decoding cached field definitions", slog.String("error", err.Error()))
		return nil, storageError("decoding cached field definitions", err)
	}
	return fields, nil
}

func (s *SimpleFieldDefinitionService) invalidate(ctx context.Context, ns shareddomain.Namespace, model domain.ModelName) {
	key := definitionsCacheKey(ns, model)
	s.mu.Lock()
	s.generation[key]++
	s.mu.Unlock()
	s.cache.Delete(ctx, key)
}

func (s *SimpleFieldDefinitionService) generationOf(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation[key]
}

func (s *SimpleFieldDefinitionService) publish(ctx context.Context, event domain.FieldEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.Warn("publishing field event",
			slog.String("event", string(event.Type)),
			slog.String("field_id", event.Field.ID.String()),
			slog.String("error", err.Error()))
	}
}

func definitionsCacheKey(ns shareddomain.Namespace, model domain.ModelName) string {
	return fmt.Sprintf("fields:%s:%s", ns, model)
}
