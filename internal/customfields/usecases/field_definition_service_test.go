package usecases_test

import (
	"context"
	"encoding/json"
	"errors"

	"time"

	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/customfields/persistence"
	"customfields-server/internal/customfields/usecases"
	"customfields-server/internal/infra/cache"
	"customfields-server/internal/infra/utils"
	shareddomain "customfields-server/internal/shared_kernel/domain"
	mockusecases "customfields-server/test/unit/doubles/customfields/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("FieldDefinitionService", func() {
	var (
		ctx context.Context
		env *environment
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		env = newEnvironment()
	})

	createField := func(page, name string) domain.FieldDefinition {
		field, err := env.fieldService.CreateField(ctx, _ns, "customer", page, usecases.FieldSpec{FieldName: name})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return field
	}

	ginkgo.Context("CreateField", func() {
		ginkgo.It("normalizes blank pages to default", func() {
			field := createField("   ", "f1")
			gomega.Expect(field.PageName).To(gomega.Equal(domain.DefaultPage))
			gomega.Expect(field.Kind).To(gomega.Equal(domain.FieldKindText))

			trimmed := createField(" profile ", "f2")
			gomega.Expect(trimmed.PageName).To(gomega.Equal(domain.PageName("profile")))
		})

		ginkgo.It("appends new fields at the end of the page", func() {
			first := createField("default", "f1")
			second := createField("default", "f2")
			gomega.Expect(first.DisplayOrder).To(gomega.Equal(0))
			gomega.Expect(second.DisplayOrder).To(gomega.Equal(1))
		})

		ginkgo.It("reports duplicates", func() {
			createField("default", "f1")
			_, err := env.fieldService.CreateField(ctx, _ns, "customer", "", usecases.FieldSpec{FieldName: "f1"})
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrDuplicateField))
		})

		ginkgo.It("rejects malformed input", func() {
			_, err := env.fieldService.CreateField(ctx, _ns, "customer", "default", usecases.FieldSpec{FieldName: " "})
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrValidation))

			_, err = env.fieldService.CreateField(ctx, _ns, "customer", "default", usecases.FieldSpec{FieldName: "f1", Kind: "blob"})
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrValidation))

			_, err = env.fieldService.CreateField(ctx, _ns, "", "default", usecases.FieldSpec{FieldName: "f1"})
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrValidation))

			locked := false
			_, err = env.fieldService.CreateField(ctx, _ns, "customer", "default", usecases.FieldSpec{
				FieldName:      "f1",
				IsSystemField:  true,
				IsConfigurable: &locked,
			})
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrValidation))
		})

		ginkgo.It("publishes a creation event", func() {
			createField("default", "f1")
			gomega.Expect(env.eventTypes()).To(gomega.Equal([]string{"field_created"}))
		})
	})

	ginkgo.Context("ListFields", func() {
		ginkgo.BeforeEach(func() {
			order := 5
			_, err := env.fieldService.CreateField(ctx, _ns, "customer", "profile", usecases.FieldSpec{FieldName: "p1"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			_, err = env.fieldService.CreateField(ctx, _ns, "customer", "default", usecases.FieldSpec{FieldName: "late", DisplayOrder: &order})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			_, err = env.fieldService.CreateField(ctx, _ns, "customer", "default", usecases.FieldSpec{FieldName: "early", DisplayOrder: utils.Ptr(1)})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("lists every page ordered by page and display order", func() {
			fields, err := env.fieldService.ListFields(ctx, _ns, "customer", nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			names := make([]string, len(fields))
			for i, field := range fields {
				names[i] = field.FieldName.String()
			}
			gomega.Expect(names).To(gomega.Equal([]string{"early", "late", "p1"}))
		})

		ginkgo.It("lists a single page", func() {
			fields, err := env.fieldService.ListFields(ctx, _ns, "customer", utils.StringPtr("profile"))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(fields).To(gomega.HaveLen(1))
			gomega.Expect(fields[0].FieldName.String()).To(gomega.Equal("p1"))
		})

		ginkgo.It("returns nothing for unknown models and pages", func() {
			fields, err := env.fieldService.ListFields(ctx, _ns, "ghost", nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(fields).To(gomega.BeEmpty())

			fields, err = env.fieldService.ListFields(ctx, _ns, "customer", utils.StringPtr("nowhere"))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(fields).To(gomega.BeEmpty())
		})

		ginkgo.It("sees new fields after a cached listing", func() {
			before, err := env.fieldService.ListFields(ctx, _ns, "customer", nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			createField("default", "fresh")

			after, err := env.fieldService.ListFields(ctx, _ns, "customer", nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(after).To(gomega.HaveLen(len(before) + 1))
		})

		ginkgo.It("does not keep a listing loaded while a field was created", func() {
			repository := &writeDuringRead{SimpleFieldDefinitionRepository: env.definitions}
			service := usecases.NewFieldDefinitionService(repository, nil, env.publisher, newMapCache(), 0)
			repository.write = func() {
				_, err := service.CreateField(ctx, _ns, "customer", "default", usecases.FieldSpec{FieldName: "f1"})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
			}

			stale, err := service.ListFields(ctx, _ns, "customer", nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(stale).To(gomega.BeEmpty())

			fresh, err := service.ListFields(ctx, _ns, "customer", nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(fresh).To(gomega.HaveLen(1))
		})

		ginkgo.It("keeps namespaces apart", func() {
			fields, err := env.fieldService.ListFields(ctx, "tenant_other", "customer", nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(fields).To(gomega.BeEmpty())
		})
	})

	ginkgo.Context("UpdateField", func() {
		ginkgo.It("moves values when the page is renamed", func() {
			field := createField("default", "f1")
			gomega.Expect(env.valueService.SaveValues(ctx, _ns, "customer", "123", "default",
				domain.FieldValues{"f1": utils.StringPtr("A")})).To(gomega.Succeed())

			updated, err := env.fieldService.UpdateField(ctx, _ns, field.ID, domain.FieldPatch{PageName: utils.StringPtr("profile")})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(updated.PageName).To(gomega.Equal(domain.PageName("profile")))

			onDefault, err := env.valueService.GetValues(ctx, _ns, "customer", "123", "default")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(onDefault).To(gomega.BeEmpty())

			onProfile, err := env.valueService.GetValues(ctx, _ns, "customer", "123", "profile")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(onProfile).To(gomega.Equal(domain.FieldValues{"f1": utils.StringPtr("A")}))

			gomega.Expect(env.eventTypes()).To(gomega.Equal([]string{"field_created", "field_updated", "field_page_migrated"}))
		})

		ginkgo.It("leaves the same state when the rename is repeated", func() {
			field := createField("a", "f1")
			gomega.Expect(env.valueService.SaveValues(ctx, _ns, "customer", "123", "a",
				domain.FieldValues{"f1": utils.StringPtr("A")})).To(gomega.Succeed())

			patch := domain.FieldPatch{PageName: utils.StringPtr("b")}
			_, err := env.fieldService.UpdateField(ctx, _ns, field.ID, patch)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			once, err := env.values.FindByRecord(ctx, _ns, "customer", "123")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, err = env.fieldService.UpdateField(ctx, _ns, field.ID, patch)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			twice, err := env.values.FindByRecord(ctx, _ns, "customer", "123")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(twice).To(gomega.HaveLen(1))
			gomega.Expect(twice[0].ID).To(gomega.Equal(once[0].ID))
			gomega.Expect(twice[0].PageName).To(gomega.Equal(once[0].PageName))
			gomega.Expect(twice[0].Value).To(gomega.Equal(once[0].Value))
		})

		ginkgo.It("applies only the given attributes", func() {
			field := createField("default", "f1")

			updated, err := env.fieldService.UpdateField(ctx, _ns, field.ID, domain.FieldPatch{
				DisplayName: utils.StringPtr("Customer rating"),
				IsRequired:  utils.Ptr(true),
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(string(updated.DisplayName)).To(gomega.Equal("Customer rating"))
			gomega.Expect(updated.IsRequired).To(gomega.BeTrue())
			gomega.Expect(updated.PageName).To(gomega.Equal(field.PageName))

			stored, err := env.fieldService.GetField(ctx, _ns, field.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(stored.Version).To(gomega.Equal(field.Version + 1))
		})

		ginkgo.It("reports unknown ids", func() {
			_, err := env.fieldService.UpdateField(ctx, _ns, "missing", domain.FieldPatch{DisplayName: utils.StringPtr("x")})
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrFieldNotFound))
		})

		ginkgo.It("keeps system fields configurable", func() {
			field, err := env.fieldService.CreateField(ctx, _ns, "customer", "default", usecases.FieldSpec{FieldName: "code", IsSystemField: true})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, err = env.fieldService.UpdateField(ctx, _ns, field.ID, domain.FieldPatch{IsConfigurable: utils.Ptr(false)})
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrValidation))
		})
	})

	ginkgo.Context("DeleteField", func() {
		ginkgo.It("removes the definition, its values on every page and its column references", func() {
			field := createField("default", "f1")
			gomega.Expect(env.valueService.SaveValues(ctx, _ns, "customer", "123", "default",
				domain.FieldValues{"f1": utils.StringPtr("A"), "f2": utils.StringPtr("B")})).To(gomega.Succeed())
			gomega.Expect(env.valueService.SaveValues(ctx, _ns, "customer", "456", "other",
				domain.FieldValues{"f1": utils.StringPtr("C")})).To(gomega.Succeed())
			_, err := env.columnService.SaveColumns(ctx, _ns, "customer", "default", json.RawMessage(`["f1", "f2"]`))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			_, err = env.columnService.SaveColumns(ctx, _ns, "customer", "other", json.RawMessage(`{"f1": {"width": 10}}`))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			deleted, err := env.fieldService.DeleteField(ctx, _ns, field.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(deleted).To(gomega.BeTrue())

			values, err := env.valueService.GetValues(ctx, _ns, "customer", "123", "default")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(values).To(gomega.Equal(domain.FieldValues{"f2": utils.StringPtr("B")}))

			other, err := env.valueService.GetValues(ctx, _ns, "customer", "456", "other")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(other).To(gomega.BeEmpty())

			columns, err := env.columnService.GetColumns(ctx, _ns, "customer", "default")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(string(columns.Columns)).To(gomega.MatchJSON(`["f2"]`))

			_, err = env.columnService.GetColumns(ctx, _ns, "customer", "other")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrColumnConfigurationNotFound))

			gomega.Expect(env.eventTypes()).To(gomega.ContainElement("field_deleted"))
		})

		ginkgo.It("returns false for unknown ids", func() {
			deleted, err := env.fieldService.DeleteField(ctx, _ns, "missing")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(deleted).To(gomega.BeFalse())
		})

		ginkgo.It("refuses system fields", func() {
			field, err := env.fieldService.CreateField(ctx, _ns, "customer", "default", usecases.FieldSpec{FieldName: "code", IsSystemField: true})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			deleted, err := env.fieldService.DeleteField(ctx, _ns, field.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrSystemField))
			gomega.Expect(deleted).To(gomega.BeFalse())
		})

		ginkgo.It("still deletes when column cleanup and event publishing fail", func() {
			ctrl := gomock.NewController(ginkgo.GinkgoT())
			columns := mockusecases.NewMockColumnConfigurationRepository(ctrl)
			columns.EXPECT().FindByModel(gomock.Any(), _ns, domain.ModelName("customer")).
				Return(nil, errors.New("column store unavailable"))
			publisher := mockusecases.NewMockFieldEventPublisher(ctrl)
			publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down")).AnyTimes()

			service := usecases.NewFieldDefinitionService(
				env.definitions,
				usecases.NewColumnConfigCleaner(columns),
				publisher,
				cache.NoopCache{},
				0,
			)

			field, err := service.CreateField(ctx, _ns, "customer", "default", usecases.FieldSpec{FieldName: "f1"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			deleted, err := service.DeleteField(ctx, _ns, field.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(deleted).To(gomega.BeTrue())

			_, err = service.GetField(ctx, _ns, field.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrFieldNotFound))
		})
	})

	ginkgo.Context("storage failures", func() {
		ginkgo.It("wraps repository errors as storage errors", func() {
			ctrl := gomock.NewController(ginkgo.GinkgoT())
			repository := mockusecases.NewMockFieldDefinitionRepository(ctrl)
			repository.EXPECT().FindByModel(gomock.Any(), _ns, domain.ModelName("customer")).
				Return(nil, errors.New("connection reset"))

			service := usecases.NewFieldDefinitionService(repository, nil, nil, nil, 0)

			_, err := service.ListFields(ctx, _ns, "customer", nil)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrStorage))
		})
	})

	ginkgo.Context("corrupt cache entries", func() {
		ginkgo.It("reports them as storage errors", func() {
			service := usecases.NewFieldDefinitionService(env.definitions, nil, nil, corruptCache{}, 0)

			_, err := service.ListFields(ctx, _ns, "customer", nil)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrStorage))
		})
	})

	ginkgo.Context("CoerceValues", func() {
		ginkgo.It("converts values with the kind of each field", func() {
			_, err := env.fieldService.CreateField(ctx, _ns, "customer", "default", usecases.FieldSpec{FieldName: "limit", Kind: "number"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			_, err = env.fieldService.CreateField(ctx, _ns, "customer", "default", usecases.FieldSpec{FieldName: "vip", Kind: "checkbox"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			coerced, err := env.fieldService.CoerceValues(ctx, _ns, "customer", "", domain.FieldValues{
				"limit": utils.StringPtr("0100.50"),
				"vip":   utils.StringPtr("yes"),
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(coerced).To(gomega.Equal(domain.FieldValues{
				"limit": utils.StringPtr("100.5"),
				"vip":   utils.StringPtr("true"),
			}))

			_, err = env.fieldService.CoerceValues(ctx, _ns, "customer", "default", domain.FieldValues{"limit": utils.StringPtr("lots")})
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrValidation))

			_, err = env.fieldService.CoerceValues(ctx, _ns, "customer", "default", domain.FieldValues{"unknown": nil})
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrValidation))
		})

		ginkgo.It("refuses input for calculated fields", func() {
			_, err := env.fieldService.CreateField(ctx, _ns, "customer", "default", usecases.FieldSpec{FieldName: "score", Kind: "calculated"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, err = env.fieldService.CoerceValues(ctx, _ns, "customer", "default", domain.FieldValues{"score": utils.StringPtr("42")})
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrValidation))
			gomega.Expect(err).To(gomega.MatchError(domain.ErrComputedField))

			coerced, err := env.fieldService.CoerceValues(ctx, _ns, "customer", "default", domain.FieldValues{"score": nil})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(coerced).To(gomega.HaveKeyWithValue("score", gomega.BeNil()))
		})
	})
})

// writeDuringRead runs write once, after the first listing has been read and
// before it is returned.
type writeDuringRead struct {
	*persistence.SimpleFieldDefinitionRepository
	write func()
	done  bool
}

func (r *writeDuringRead) FindByModel(
	ctx context.Context,
	ns shareddomain.Namespace,
	model domain.ModelName,
) ([]domain.FieldDefinition, error) {
	fields, err := r.SimpleFieldDefinitionRepository.FindByModel(ctx, ns, model)
	if err == nil && !r.done {
		r.done = true
		r.write()
	}
	return fields, err
}

// corruptCache hands out bytes that do not decode.
type corruptCache struct {
	cache.NoopCache
}

func (corruptCache) GetOrSet(context.Context, string, time.Duration, func() ([]byte, error)) ([]byte, error) {
	return []byte{0xc1}, nil
}
