package persistence_test

import (
	"context"
	"errors"
	"time"

	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/customfields/persistence"
	"customfields-server/internal/infra/sql"
	"customfields-server/internal/infra/utils"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = ginkgo.Describe("FieldValueRepository", func() {
	var (
		ctx  context.Context
		orm  sql.ORM
		repo *persistence.SimpleFieldValueRepository
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		repo, err = persistence.NewFieldValueRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.Context("Save", func() {
		ginkgo.It("inserts and then updates in place", func() {
			gomega.Expect(repo.Save(ctx, _ns, "customer", "123", "default",
				domain.FieldValues{"f1": utils.StringPtr("A")})).To(gomega.Succeed())
			first, err := repo.FindByRecordAndPage(ctx, _ns, "customer", "123", "default")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(repo.Save(ctx, _ns, "customer", "123", "default",
				domain.FieldValues{"f1": utils.StringPtr("B")})).To(gomega.Succeed())
			second, err := repo.FindByRecordAndPage(ctx, _ns, "customer", "123", "default")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(second).To(gomega.HaveLen(1))
			gomega.Expect(second[0].ID).To(gomega.Equal(first[0].ID))
			gomega.Expect(*second[0].Value).To(gomega.Equal("B"))
		})

		ginkgo.It("stores nil as an explicit empty value", func() {
			gomega.Expect(repo.Save(ctx, _ns, "customer", "123", "default",
				domain.FieldValues{"f1": nil})).To(gomega.Succeed())

			stored, err := repo.FindByRecordAndPage(ctx, _ns, "customer", "123", "default")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(stored).To(gomega.HaveLen(1))
			gomega.Expect(stored[0].Value).To(gomega.BeNil())
		})

		ginkgo.It("removes the field from other pages", func() {
			gomega.Expect(repo.Save(ctx, _ns, "customer", "123", "a",
				domain.FieldValues{"f1": utils.StringPtr("X"), "f2": utils.StringPtr("other")})).To(gomega.Succeed())
			gomega.Expect(repo.Save(ctx, _ns, "customer", "123", "b",
				domain.FieldValues{"f1": utils.StringPtr("Y")})).To(gomega.Succeed())

			onA, err := repo.FindByRecordAndPage(ctx, _ns, "customer", "123", "a")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(onA).To(gomega.HaveLen(1))
			gomega.Expect(onA[0].FieldName.String()).To(gomega.Equal("f2"))

			onB, err := repo.FindByRecordAndPage(ctx, _ns, "customer", "123", "b")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(onB).To(gomega.HaveLen(1))
			gomega.Expect(*onB[0].Value).To(gomega.Equal("Y"))
		})

		ginkgo.It("collapses duplicates already present on the page", func() {
			gomega.Expect(repo.InsertValues(ctx, []domain.FieldValue{
				domain.NewFieldValue(_ns, "customer", "default", "123", "f1", utils.StringPtr("1")),
				domain.NewFieldValue(_ns, "customer", "default", "123", "f1", utils.StringPtr("2")),
			}, 10)).To(gomega.Succeed())

			gomega.Expect(repo.Save(ctx, _ns, "customer", "123", "default",
				domain.FieldValues{"f1": utils.StringPtr("3")})).To(gomega.Succeed())

			all, err := repo.FindByRecord(ctx, _ns, "customer", "123")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(all).To(gomega.HaveLen(1))
			gomega.Expect(*all[0].Value).To(gomega.Equal("3"))
		})

		ginkgo.It("rolls back every field when one of them fails", func() {
			gomega.Expect(repo.Save(ctx, _ns, "customer", "123", "a",
				domain.FieldValues{"f1": utils.StringPtr("X")})).To(gomega.Succeed())

			inserts := 0
			err := orm.(*sql.DB).DB.Callback().Create().Before("gorm:create").
				Register("test:fail_second_insert", func(db *gorm.DB) {
					if db.Statement.Table != "custom_field_values" {
						return
					}
					inserts++
					if inserts == 2 {
						_ = db.AddError(errors.New("disk full"))
					}
				})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			err = repo.Save(ctx, _ns, "customer", "123", "b",
				domain.FieldValues{"f1": utils.StringPtr("Y"), "f2": utils.StringPtr("Z")})
			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("disk full")))

			onA, err := repo.FindByRecordAndPage(ctx, _ns, "customer", "123", "a")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(onA).To(gomega.HaveLen(1))
			gomega.Expect(onA[0].FieldName.String()).To(gomega.Equal("f1"))
			gomega.Expect(*onA[0].Value).To(gomega.Equal("X"))

			onB, err := repo.FindByRecordAndPage(ctx, _ns, "customer", "123", "b")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(onB).To(gomega.BeEmpty())
		})

		ginkgo.It("keeps namespaces apart", func() {
			gomega.Expect(repo.Save(ctx, _ns, "customer", "123", "a",
				domain.FieldValues{"f1": utils.StringPtr("mine")})).To(gomega.Succeed())
			gomega.Expect(repo.Save(ctx, "tenant_other", "customer", "123", "b",
				domain.FieldValues{"f1": utils.StringPtr("theirs")})).To(gomega.Succeed())

			mine, err := repo.FindByRecordAndPage(ctx, _ns, "customer", "123", "a")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(mine).To(gomega.HaveLen(1))
		})
	})

	ginkgo.Context("DeletePage", func() {
		ginkgo.It("only clears the given page", func() {
			gomega.Expect(repo.Save(ctx, _ns, "customer", "123", "a",
				domain.FieldValues{"f1": utils.StringPtr("1"), "f2": utils.StringPtr("2")})).To(gomega.Succeed())
			gomega.Expect(repo.Save(ctx, _ns, "customer", "123", "b",
				domain.FieldValues{"f3": utils.StringPtr("3")})).To(gomega.Succeed())

			removed, err := repo.DeletePage(ctx, _ns, "customer", "a", "123")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(removed).To(gomega.Equal(int64(2)))

			rest, err := repo.FindByRecord(ctx, _ns, "customer", "123")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(rest).To(gomega.HaveLen(1))
			gomega.Expect(rest[0].PageName).To(gomega.Equal(domain.PageName("b")))
		})
	})

	ginkgo.Context("duplicates", func() {
		var (
			older domain.FieldValue
			sets  []domain.DuplicateSet
		)

		ginkgo.BeforeEach(func() {
			base := time.Now().UTC().Add(-time.Hour)
			older = domain.NewFieldValue(_ns, "customer", "default", "123", "f1", utils.StringPtr("old"))
			older.UpdatedAt = utils.Time{Time: base}
			newer := domain.NewFieldValue(_ns, "customer", "profile", "123", "f1", utils.StringPtr("new"))
			newer.UpdatedAt = utils.Time{Time: base.Add(time.Minute)}
			single := domain.NewFieldValue(_ns, "customer", "default", "456", "f1", utils.StringPtr("only"))
			gomega.Expect(repo.InsertValues(ctx, []domain.FieldValue{older, newer, single}, 10)).To(gomega.Succeed())

			rows, err := repo.FindByRecord(ctx, _ns, "customer", "123")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			sets = domain.GroupDuplicates(rows)
			gomega.Expect(sets).To(gomega.HaveLen(1))
		})

		ginkgo.It("finds records holding more than one row per field and deletes the losers", func() {
			records, err := repo.FindRecordsWithDuplicates(ctx, _ns, "customer")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(records).To(gomega.Equal([]domain.RecordID{"123"}))

			removed, err := repo.DeleteDuplicates(ctx, "tenant_other", sets)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(removed).To(gomega.BeZero())

			removed, err = repo.DeleteDuplicates(ctx, _ns, sets)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(removed).To(gomega.Equal(int64(1)))

			records, err = repo.FindRecordsWithDuplicates(ctx, _ns, "customer")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(records).To(gomega.BeEmpty())
		})

		ginkgo.It("keeps a losing row rewritten after it was read", func() {
			gomega.Expect(repo.Save(ctx, _ns, "customer", "123", "default",
				domain.FieldValues{"f1": utils.StringPtr("latest")})).To(gomega.Succeed())

			removed, err := repo.DeleteDuplicates(ctx, _ns, sets)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(removed).To(gomega.BeZero())

			rows, err := repo.FindByRecord(ctx, _ns, "customer", "123")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(rows).To(gomega.HaveLen(1))
			gomega.Expect(*rows[0].Value).To(gomega.Equal("latest"))
		})

		ginkgo.It("keeps a losing row whose winner is gone", func() {
			_, err := repo.DeletePage(ctx, _ns, "customer", "profile", "123")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			removed, err := repo.DeleteDuplicates(ctx, _ns, sets)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(removed).To(gomega.BeZero())

			rows, err := repo.FindByRecord(ctx, _ns, "customer", "123")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(rows).To(gomega.HaveLen(1))
			gomega.Expect(rows[0].ID).To(gomega.Equal(older.ID))
		})
	})
})
