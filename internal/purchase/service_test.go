package purchase

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/frahmantamala/budget-tracker/internal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

func TestPurchaseService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Purchase Service Suite")
}

type mockRepository struct {
	listJoinedFn         func() ([]*JoinedPurchase, error)
	createFn             func(p *Purchase) (*JoinedPurchase, error)
	updateFn             func(p *Purchase) (*JoinedPurchase, error)
	deleteFn             func(id int64) error
	countByDateFn        func() ([]*DateCount, error)
	amountByDateFn       func() ([]*DateAmount, error)
	spendingByCategoryFn func() ([]*CategorySpending, error)
	countByCategoryFn    func() ([]*CategoryCount, error)

	createCalls int
}

func (m *mockRepository) ListJoined() ([]*JoinedPurchase, error) { return m.listJoinedFn() }
func (m *mockRepository) Create(p *Purchase) (*JoinedPurchase, error) {
	m.createCalls++
	return m.createFn(p)
}
func (m *mockRepository) Update(p *Purchase) (*JoinedPurchase, error) { return m.updateFn(p) }
func (m *mockRepository) Delete(id int64) error                       { return m.deleteFn(id) }
func (m *mockRepository) CountByDate() ([]*DateCount, error)          { return m.countByDateFn() }
func (m *mockRepository) AmountByDate() ([]*DateAmount, error)        { return m.amountByDateFn() }
func (m *mockRepository) SpendingByCategory() ([]*CategorySpending, error) {
	return m.spendingByCategoryFn()
}
func (m *mockRepository) CountByCategory() ([]*CategoryCount, error) { return m.countByCategoryFn() }

var _ = Describe("Purchase Service", func() {
	var (
		repo    *mockRepository
		service *Service
	)

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	BeforeEach(func() {
		repo = &mockRepository{}
		service = NewService(repo, testLogger)
	})

	Describe("CreatePurchase", func() {
		It("should stamp the purchase with today's date at midnight UTC", func() {
			service.now = func() time.Time {
				return time.Date(2026, 8, 30, 14, 35, 12, 0, time.FixedZone("UTC+7", 7*3600))
			}

			var stored *Purchase
			repo.createFn = func(p *Purchase) (*JoinedPurchase, error) {
				stored = p
				return &JoinedPurchase{
					PurchaseID:  7,
					CategoryID:  p.CategoryID,
					Description: p.Description,
					Amount:      p.Amount,
					Date:        p.Date,
					Category:    "Groceries",
				}, nil
			}

			created, err := service.CreatePurchase(&CreatePurchaseDTO{
				CategoryID:  1,
				Description: "weekly shop",
				Amount:      decimal.NewFromInt(80),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Category).To(Equal("Groceries"))
			Expect(stored.Date).To(BeTemporally("==", time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)))
		})

		It("should reject a zero amount without touching the store", func() {
			_, err := service.CreatePurchase(&CreatePurchaseDTO{
				CategoryID:  1,
				Description: "free lunch",
				Amount:      decimal.Zero,
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			Expect(appErr.Message).To(Equal("amount must be positive"))
			Expect(repo.createCalls).To(Equal(0))
		})

		It("should reject a missing description", func() {
			_, err := service.CreatePurchase(&CreatePurchaseDTO{
				CategoryID: 1,
				Amount:     decimal.NewFromInt(10),
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Message).To(Equal("description is required"))
		})

		It("should hide store failures behind the generic message", func() {
			repo.createFn = func(p *Purchase) (*JoinedPurchase, error) {
				return nil, errors.New("connection refused")
			}

			_, err := service.CreatePurchase(&CreatePurchaseDTO{
				CategoryID:  1,
				Description: "weekly shop",
				Amount:      decimal.NewFromInt(80),
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeInternal))
			Expect(appErr.Message).To(Equal(internal.GenericStoreError))
		})
	})

	Describe("UpdatePurchase", func() {
		It("should surface a vanished purchase as not found", func() {
			repo.updateFn = func(p *Purchase) (*JoinedPurchase, error) {
				return nil, ErrPurchaseNotFound
			}

			_, err := service.UpdatePurchase(&UpdatePurchaseDTO{
				PurchaseID:  42,
				CategoryID:  1,
				Description: "ghost",
				Amount:      decimal.NewFromInt(5),
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeNotFound))
			Expect(appErr.Message).To(Equal("cannot find purchase with purchaseId 42"))
		})

		It("should reject a missing purchaseId", func() {
			_, err := service.UpdatePurchase(&UpdatePurchaseDTO{
				CategoryID:  1,
				Description: "x",
				Amount:      decimal.NewFromInt(5),
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Message).To(Equal("purchaseId is required"))
		})
	})

	Describe("ListPurchases", func() {
		It("should turn a nil result into an empty slice", func() {
			repo.listJoinedFn = func() ([]*JoinedPurchase, error) { return nil, nil }

			purchases, err := service.ListPurchases()
			Expect(err).NotTo(HaveOccurred())
			Expect(purchases).NotTo(BeNil())
			Expect(purchases).To(BeEmpty())
		})
	})

	Describe("report queries", func() {
		It("should normalize nil report rows to empty slices", func() {
			repo.countByDateFn = func() ([]*DateCount, error) { return nil, nil }
			repo.amountByDateFn = func() ([]*DateAmount, error) { return nil, nil }
			repo.spendingByCategoryFn = func() ([]*CategorySpending, error) { return nil, nil }
			repo.countByCategoryFn = func() ([]*CategoryCount, error) { return nil, nil }

			counts, err := service.CountPurchasesByDate()
			Expect(err).NotTo(HaveOccurred())
			Expect(counts).NotTo(BeNil())

			amounts, err := service.SumAmountByDate()
			Expect(err).NotTo(HaveOccurred())
			Expect(amounts).NotTo(BeNil())

			spending, err := service.SpendingByCategory()
			Expect(err).NotTo(HaveOccurred())
			Expect(spending).NotTo(BeNil())

			perCategory, err := service.CountPurchasesByCategory()
			Expect(err).NotTo(HaveOccurred())
			Expect(perCategory).NotTo(BeNil())
		})

		It("should wrap store failures with the generic message", func() {
			repo.countByDateFn = func() ([]*DateCount, error) {
				return nil, errors.New("relation does not exist")
			}

			_, err := service.CountPurchasesByDate()
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Message).To(Equal(internal.GenericStoreError))
		})
	})
})
