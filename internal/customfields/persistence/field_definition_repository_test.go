package persistence_test

import (
	"context"

	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/customfields/persistence"
	"customfields-server/internal/customfields/usecases"
	"customfields-server/internal/infra/sql"
	"customfields-server/internal/infra/utils"
	shareddomain "customfields-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

const _ns = shareddomain.Namespace("tenant_acme")

func newField(model, page, name string) domain.FieldDefinition {
	field, err := domain.NewFieldDefinitionBuilder().
		WithNamespace(_ns).
		WithModelName(model).
		WithPageName(page).
		WithFieldName(name).
		Build()
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	return field
}

var _ = ginkgo.Describe("FieldDefinitionRepository", func() {
	var (
		ctx    context.Context
		orm    sql.ORM
		repo   *persistence.SimpleFieldDefinitionRepository
		values *persistence.SimpleFieldValueRepository
	)

	ginkgo.BeforeEach(func() {
		var err error
		ctx = context.Background()
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repo, err = persistence.NewFieldDefinitionRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		values, err = persistence.NewFieldValueRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.Context("Create", func() {
		ginkgo.It("stores the definition and reads it back", func() {
			field := newField("customer", "default", "f1")
			field.Options = []domain.FieldOption{{Value: "a", Label: "A"}}
			field.ValidationRules = []byte(`{"max": 10}`)

			gomega.Expect(repo.Create(ctx, field)).To(gomega.Succeed())

			stored, err := repo.GetByID(ctx, _ns, field.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(stored.FieldName).To(gomega.Equal(field.FieldName))
			gomega.Expect(stored.Options).To(gomega.Equal(field.Options))
			gomega.Expect(string(stored.ValidationRules)).To(gomega.MatchJSON(`{"max": 10}`))
			gomega.Expect(stored.IsConfigurable).To(gomega.BeTrue())
		})

		ginkgo.It("rejects a second field with the same model, page and name", func() {
			gomega.Expect(repo.Create(ctx, newField("customer", "default", "f1"))).To(gomega.Succeed())

			err := repo.Create(ctx, newField("customer", "default", "f1"))
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrDuplicateField))
		})

		ginkgo.It("allows the same name on another page, model or namespace", func() {
			gomega.Expect(repo.Create(ctx, newField("customer", "default", "f1"))).To(gomega.Succeed())
			gomega.Expect(repo.Create(ctx, newField("customer", "profile", "f1"))).To(gomega.Succeed())
			gomega.Expect(repo.Create(ctx, newField("supplier", "default", "f1"))).To(gomega.Succeed())

			other := newField("customer", "default", "f1")
			other.Namespace = "tenant_other"
			gomega.Expect(repo.Create(ctx, other)).To(gomega.Succeed())
		})
	})

	ginkgo.Context("GetByID", func() {
		ginkgo.It("does not resolve ids of other namespaces", func() {
			field := newField("customer", "default", "f1")
			gomega.Expect(repo.Create(ctx, field)).To(gomega.Succeed())

			_, err := repo.GetByID(ctx, "tenant_other", field.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrFieldNotFound))
		})
	})

	ginkgo.Context("FindByModel and NextDisplayOrder", func() {
		ginkgo.It("orders by page then display order", func() {
			b := newField("customer", "profile", "b")
			b.DisplayOrder = 0
			a := newField("customer", "default", "a")
			a.DisplayOrder = 2
			c := newField("customer", "default", "c")
			c.DisplayOrder = 1
			for _, field := range []domain.FieldDefinition{b, a, c} {
				gomega.Expect(repo.Create(ctx, field)).To(gomega.Succeed())
			}

			fields, err := repo.FindByModel(ctx, _ns, "customer")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(fields).To(gomega.HaveLen(3))
			gomega.Expect(fields[0].FieldName.String()).To(gomega.Equal("c"))
			gomega.Expect(fields[1].FieldName.String()).To(gomega.Equal("a"))
			gomega.Expect(fields[2].FieldName.String()).To(gomega.Equal("b"))

			next, err := repo.NextDisplayOrder(ctx, _ns, "customer", "default")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(next).To(gomega.Equal(3))

			next, err = repo.NextDisplayOrder(ctx, _ns, "customer", "empty")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(next).To(gomega.Equal(0))
		})

		ginkgo.It("returns an empty list for unknown models", func() {
			fields, err := repo.FindByModel(ctx, _ns, "unknown")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(fields).To(gomega.BeEmpty())
		})
	})

	ginkgo.Context("Update with a page change", func() {
		var field domain.FieldDefinition

		ginkgo.BeforeEach(func() {
			field = newField("customer", "default", "f1")
			gomega.Expect(repo.Create(ctx, field)).To(gomega.Succeed())
			gomega.Expect(values.Save(ctx, _ns, "customer", "123", "default",
				domain.FieldValues{"f1": utils.StringPtr("A")})).To(gomega.Succeed())
			gomega.Expect(values.Save(ctx, _ns, "customer", "456", "default",
				domain.FieldValues{"f1": utils.StringPtr("B")})).To(gomega.Succeed())
		})

		ginkgo.It("moves every value to the new page", func() {
			field.PageName = "profile"
			migrated, err := repo.Update(ctx, field, "default")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(migrated).To(gomega.Equal(int64(2)))

			old, err := values.FindByRecordAndPage(ctx, _ns, "customer", "123", "default")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(old).To(gomega.BeEmpty())

			moved, err := values.FindByRecordAndPage(ctx, _ns, "customer", "123", "profile")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(moved).To(gomega.HaveLen(1))
			gomega.Expect(*moved[0].Value).To(gomega.Equal("A"))
		})

		ginkgo.It("prefers the old page value when the new page already has one", func() {
			err := values.InsertValues(ctx, []domain.FieldValue{
				domain.NewFieldValue(_ns, "customer", "profile", "123", "f1", utils.StringPtr("stale")),
			}, 10)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			field.PageName = "profile"
			_, err = repo.Update(ctx, field, "default")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			all, err := values.FindByRecord(ctx, _ns, "customer", "123")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(all).To(gomega.HaveLen(1))
			gomega.Expect(all[0].PageName).To(gomega.Equal(domain.PageName("profile")))
			gomega.Expect(*all[0].Value).To(gomega.Equal("A"))
		})

		ginkgo.It("is a no-op when run again", func() {
			field.PageName = "profile"
			_, err := repo.Update(ctx, field, "default")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			before, err := values.FindByRecord(ctx, _ns, "customer", "456")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			migrated, err := repo.Update(ctx, field, "default")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(migrated).To(gomega.BeZero())

			after, err := values.FindByRecord(ctx, _ns, "customer", "456")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(after).To(gomega.HaveLen(1))
			gomega.Expect(after[0].ID).To(gomega.Equal(before[0].ID))
			gomega.Expect(after[0].Value).To(gomega.Equal(before[0].Value))
		})

		ginkgo.It("rolls back when the new page already defines the field", func() {
			gomega.Expect(repo.Create(ctx, newField("customer", "profile", "f1"))).To(gomega.Succeed())

			field.PageName = "profile"
			_, err := repo.Update(ctx, field, "default")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrDuplicateField))

			stayed, err := values.FindByRecordAndPage(ctx, _ns, "customer", "123", "default")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(stayed).To(gomega.HaveLen(1))
		})

		ginkgo.It("reports unknown definitions", func() {
			ghost := newField("customer", "profile", "ghost")
			_, err := repo.Update(ctx, ghost, "default")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrFieldNotFound))
		})
	})

	ginkgo.Context("Delete", func() {
		ginkgo.It("removes the field's values on every page and keeps other fields", func() {
			field := newField("customer", "default", "f1")
			gomega.Expect(repo.Create(ctx, field)).To(gomega.Succeed())
			gomega.Expect(values.Save(ctx, _ns, "customer", "123", "default",
				domain.FieldValues{"f1": utils.StringPtr("A"), "f2": utils.StringPtr("keep")})).To(gomega.Succeed())
			gomega.Expect(values.InsertValues(ctx, []domain.FieldValue{
				domain.NewFieldValue(_ns, "customer", "profile", "456", "f1", utils.StringPtr("B")),
			}, 10)).To(gomega.Succeed())

			removed, err := repo.Delete(ctx, field)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(removed).To(gomega.Equal(int64(2)))

			_, err = repo.GetByID(ctx, _ns, field.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrFieldNotFound))

			rest, err := values.FindByRecord(ctx, _ns, "customer", "123")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(rest).To(gomega.HaveLen(1))
			gomega.Expect(rest[0].FieldName.String()).To(gomega.Equal("f2"))
		})

		ginkgo.It("reports unknown definitions", func() {
			_, err := repo.Delete(ctx, newField("customer", "default", "ghost"))
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrFieldNotFound))
		})
	})
})
