package persistence_test

import (
	"context"
	"encoding/json"

	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/customfields/persistence"
	"customfields-server/internal/customfields/usecases"
	"customfields-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("ColumnConfigurationRepository", func() {
	var (
		ctx  context.Context
		repo *persistence.SimpleColumnConfigurationRepository
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		orm, err := sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		repo, err = persistence.NewColumnConfigurationRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.It("saves, overwrites, lists and deletes configurations", func() {
		config, err := domain.NewColumnConfiguration(_ns, "customer", "default", json.RawMessage(`["f1", "f2"]`))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(repo.Save(ctx, config)).To(gomega.Succeed())

		config.Columns = json.RawMessage(`{"f1": {"width": 80}}`)
		gomega.Expect(repo.Save(ctx, config)).To(gomega.Succeed())

		stored, err := repo.Get(ctx, _ns, "customer", "default")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(string(stored.Columns)).To(gomega.MatchJSON(`{"f1": {"width": 80}}`))

		profile, err := domain.NewColumnConfiguration(_ns, "customer", "profile", json.RawMessage(`["f3"]`))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(repo.Save(ctx, profile)).To(gomega.Succeed())

		all, err := repo.FindByModel(ctx, _ns, "customer")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(all).To(gomega.HaveLen(2))
		gomega.Expect(all[0].PageName).To(gomega.Equal(domain.PageName("default")))

		gomega.Expect(repo.Delete(ctx, _ns, "customer", "default")).To(gomega.Succeed())
		_, err = repo.Get(ctx, _ns, "customer", "default")
		gomega.Expect(err).To(gomega.MatchError(usecases.ErrColumnConfigurationNotFound))
	})
})
