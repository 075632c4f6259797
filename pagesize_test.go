package listctrl_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	listctrl "github.com/nrfta/go-listctrl"
)

func intPtr(n int) *int { return &n }

var _ = Describe("CanonicalPageSizes", func() {
	It("deduplicates, drops non-positive values, and sorts ascending", func() {
		set := listctrl.CanonicalPageSizes([]int{50, 10, 10, -5, 0, 25}, 10)

		Expect(set).To(Equal([]int{10, 25, 50}))
	})

	It("inserts the default when the allow-list omits it", func() {
		set := listctrl.CanonicalPageSizes([]int{25, 50}, 10)

		Expect(set).To(Equal([]int{10, 25, 50}))
	})

	It("always contains the default", func() {
		for _, allowed := range [][]int{nil, {}, {10}, {99, 3}, {-1}} {
			set := listctrl.CanonicalPageSizes(allowed, 20)
			Expect(set).To(ContainElement(20))
		}
	})

	It("falls back to the package default when the default is invalid", func() {
		set := listctrl.CanonicalPageSizes([]int{25}, 0)

		Expect(set).To(Equal([]int{10, 25}))
	})
})

var _ = Describe("ResolvePageSize", func() {
	allowed := []int{10, 25, 50}

	It("returns the default when nothing is requested", func() {
		Expect(listctrl.ResolvePageSize(nil, allowed, 10)).To(Equal(10))
	})

	It("returns the request unchanged when it is a member", func() {
		Expect(listctrl.ResolvePageSize(intPtr(25), allowed, 10)).To(Equal(25))
	})

	It("returns the default for a request outside the set", func() {
		Expect(listctrl.ResolvePageSize(intPtr(9999), allowed, 10)).To(Equal(10))
		Expect(listctrl.ResolvePageSize(intPtr(-1), allowed, 10)).To(Equal(10))
		Expect(listctrl.ResolvePageSize(intPtr(0), allowed, 10)).To(Equal(10))
	})

	It("resolves the default to itself", func() {
		Expect(listctrl.ResolvePageSize(intPtr(10), allowed, 10)).To(Equal(10))
	})

	It("resolves the default even when the allow-list omits it", func() {
		Expect(listctrl.ResolvePageSize(intPtr(10), []int{25, 50}, 10)).To(Equal(10))
	})

	It("always resolves to a member of the canonical set", func() {
		set := listctrl.CanonicalPageSizes(allowed, 10)
		for _, requested := range []int{-10, 0, 1, 10, 11, 25, 50, 51, 1000000} {
			Expect(set).To(ContainElement(listctrl.ResolvePageSize(intPtr(requested), allowed, 10)))
		}
	})
})

var _ = Describe("ListConfig page sizes", func() {
	It("uses the package defaults when not configured", func() {
		cfg := listctrl.NewListConfig("posts")

		Expect(cfg.CanonicalPageSizes()).To(Equal([]int{10, 25, 50, 100}))
		Expect(cfg.ResolvePageSize(nil)).To(Equal(10))
	})

	It("resolves against the configured allow-list", func() {
		cfg := listctrl.NewListConfig("comments").
			WithPageSizes(10, 25, 50).
			WithDefaultSize(10)

		Expect(cfg.ResolvePageSize(intPtr(50))).To(Equal(50))
		Expect(cfg.ResolvePageSize(intPtr(100))).To(Equal(10))
	})
})
