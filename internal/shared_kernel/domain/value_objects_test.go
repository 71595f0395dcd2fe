package domain_test

import (
	"customfields-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Value objects", func() {
	It("render as their underlying string", func() {
		Expect(domain.ID("0190a").String()).To(Equal("0190a"))
		Expect(domain.Name("priority").String()).To(Equal("priority"))
		Expect(domain.Namespace("tenant_acme").String()).To(Equal("tenant_acme"))
	})

	DescribeTable("namespace derivation from tenant ids",
		func(tenant string, expected domain.Namespace) {
			ns, err := domain.NamespaceForTenant(tenant)
			Expect(err).ToNot(HaveOccurred())
			Expect(ns).To(Equal(expected))
		},
		Entry("lowercases", "ACME", domain.Namespace("tenant_acme")),
		Entry("collapses separators", "acme--eu.west", domain.Namespace("tenant_acme_eu_west")),
		Entry("keeps underscores", "acme_01", domain.Namespace("tenant_acme_01")),
	)
})
