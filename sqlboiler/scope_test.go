package sqlboiler_test

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/friendsofgo/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	listctrl "github.com/nrfta/go-listctrl"
	"github.com/nrfta/go-listctrl/sqlboiler"
)

var _ = Describe("PrecedingWhereClause", func() {
	stamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	key := listctrl.Key(8, null.TimeFrom(stamp))

	It("builds the descending comparison", func() {
		rule := listctrl.NewOrderingRule("created_at", true)

		clause, args := sqlboiler.PrecedingWhereClause(rule, key)

		Expect(clause).To(Equal(`("created_at" > ? OR ("created_at" = ? AND "id" > ?))`))
		Expect(args).To(Equal([]interface{}{stamp, stamp, 8}))
	})

	It("builds the ascending comparison", func() {
		rule := listctrl.NewOrderingRule("created_at", false)

		clause, _ := sqlboiler.PrecedingWhereClause(rule, key)

		Expect(clause).To(Equal(`("created_at" < ? OR ("created_at" = ? AND "id" < ?))`))
	})

	It("falls back to id-only counting for a null timestamp", func() {
		rule := listctrl.NewOrderingRule("created_at", true)

		clause, args := sqlboiler.PrecedingWhereClause(rule, listctrl.Key(8, null.Time{}))

		Expect(clause).To(Equal(`"id" > ?`))
		Expect(args).To(Equal([]interface{}{8}))
	})

	It("respects a custom tie-break column", func() {
		rule := listctrl.OrderingRule{Column: "published_at", IDColumn: "comment_id", Desc: true}

		clause, _ := sqlboiler.PrecedingWhereClause(rule, key)

		Expect(clause).To(Equal(`("published_at" > ? OR ("published_at" = ? AND "comment_id" > ?))`))
	})
})

var _ = Describe("Scope", func() {
	var (
		ctx      context.Context
		captured [][]qm.QueryMod
		result   int64
		countErr error
		sut      *sqlboiler.Scope
	)

	count := func(ctx context.Context, mods ...qm.QueryMod) (int64, error) {
		captured = append(captured, mods)
		return result, countErr
	}

	stamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	key := listctrl.Key(8, null.TimeFrom(stamp))
	rule := listctrl.NewOrderingRule("created_at", true)

	BeforeEach(func() {
		ctx = context.Background()
		captured = nil
		result = 0
		countErr = nil
		sut = sqlboiler.NewScope(count, qm.Where("approved = ?", true))
	})

	Describe("Contains", func() {
		It("counts on the id column with the base filter applied", func() {
			result = 1

			member, err := sut.Contains(ctx, key)

			Expect(err).ToNot(HaveOccurred())
			Expect(member).To(BeTrue())
			Expect(captured).To(HaveLen(1))
			// base filter mod plus the id equality mod
			Expect(captured[0]).To(HaveLen(2))
		})

		It("reports a zero count as non-membership", func() {
			member, err := sut.Contains(ctx, key)

			Expect(err).ToNot(HaveOccurred())
			Expect(member).To(BeFalse())
		})

		It("wraps count failures", func() {
			countErr = errors.New("connection refused")

			_, err := sut.Contains(ctx, key)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("check scope membership"))
		})
	})

	Describe("CountPreceding", func() {
		It("counts with the base filter plus the preceding predicate", func() {
			result = 22

			n, err := sut.CountPreceding(ctx, key, rule)

			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(int64(22)))
			Expect(captured).To(HaveLen(1))
			Expect(captured[0]).To(HaveLen(2))
		})

		It("wraps count failures", func() {
			countErr = errors.New("connection refused")

			_, err := sut.CountPreceding(ctx, key, rule)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("count preceding records"))
		})
	})

	It("locates through listctrl.LocatePage", func() {
		result = 1 // membership count, then reused as preceding count

		page, err := listctrl.LocatePage(ctx, key, sut, rule, 10)

		Expect(err).ToNot(HaveOccurred())
		Expect(page).To(Equal(1))
		Expect(captured).To(HaveLen(2))
	})
})
