package persistence_test

import (
	"context"
	"fmt"

	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/customfields/persistence"
	"customfields-server/internal/infra/sql"
	"customfields-server/internal/infra/utils"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("StatsRepository", func() {
	var (
		ctx         context.Context
		stats       *persistence.SimpleStatsRepository
		definitions *persistence.SimpleFieldDefinitionRepository
		values      *persistence.SimpleFieldValueRepository
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		orm, err := sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		stats, err = persistence.NewStatsRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		definitions, err = persistence.NewFieldDefinitionRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		values, err = persistence.NewFieldValueRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.It("counts definitions and values per page", func() {
		gomega.Expect(definitions.Create(ctx, newField("customer", "default", "f1"))).To(gomega.Succeed())
		gomega.Expect(definitions.Create(ctx, newField("customer", "default", "f2"))).To(gomega.Succeed())
		gomega.Expect(definitions.Create(ctx, newField("customer", "profile", "f3"))).To(gomega.Succeed())

		rows := make([]domain.FieldValue, 0, 30)
		for i := 0; i < 20; i++ {
			rows = append(rows, domain.NewFieldValue(_ns, "customer", "default", domain.RecordID(fmt.Sprint(i)), "f1", utils.StringPtr("x")))
		}
		for i := 0; i < 10; i++ {
			rows = append(rows, domain.NewFieldValue(_ns, "customer", "profile", domain.RecordID(fmt.Sprint(i)), "f3", utils.StringPtr("y")))
		}
		rows = append(rows, domain.NewFieldValue(_ns, "invoice", "default", "1", "total", utils.StringPtr("9")))
		rows = append(rows, domain.NewFieldValue("tenant_other", "customer", "default", "1", "f1", utils.StringPtr("z")))
		gomega.Expect(values.InsertValues(ctx, rows, 8)).To(gomega.Succeed())

		byPage, err := stats.CountValuesByPage(ctx, _ns, "customer")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(byPage).To(gomega.Equal(map[domain.PageName]int64{"default": 20, "profile": 10}))

		fields, err := stats.CountFieldsByPage(ctx, _ns, "customer")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(fields).To(gomega.Equal(map[domain.PageName]int64{"default": 2, "profile": 1}))

		models, err := stats.ModelNames(ctx, _ns)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(models).To(gomega.Equal([]domain.ModelName{"customer", "invoice"}))
	})

	ginkgo.It("returns empty results for unknown models", func() {
		byPage, err := stats.CountValuesByPage(ctx, _ns, "nothing")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(byPage).To(gomega.BeEmpty())
	})
})
