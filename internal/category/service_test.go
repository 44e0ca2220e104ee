package category

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/frahmantamala/budget-tracker/internal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

func TestCategoryService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Category Service Suite")
}

type mockRepository struct {
	listWithSpendFn func() ([]*CategoryWithSpend, error)
	createFn        func(cat *Category) (*CategoryWithSpend, error)
	updateFn        func(cat *Category) (*Category, error)
	deleteFn        func(id int64) error
	budgetVsSpendFn func() ([]*BudgetRow, []*SpendRow, error)

	createCalls int
}

func (m *mockRepository) ListWithSpend() ([]*CategoryWithSpend, error) { return m.listWithSpendFn() }
func (m *mockRepository) Create(cat *Category) (*CategoryWithSpend, error) {
	m.createCalls++
	return m.createFn(cat)
}
func (m *mockRepository) Update(cat *Category) (*Category, error) { return m.updateFn(cat) }
func (m *mockRepository) Delete(id int64) error                   { return m.deleteFn(id) }
func (m *mockRepository) BudgetVsSpend() ([]*BudgetRow, []*SpendRow, error) {
	return m.budgetVsSpendFn()
}

var _ = Describe("Category Service", func() {
	var (
		repo    *mockRepository
		service *Service
	)

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	BeforeEach(func() {
		repo = &mockRepository{}
		service = NewService(repo, testLogger)
	})

	Describe("CreateCategory", func() {
		It("should pass the category through and return the aggregated shape", func() {
			repo.createFn = func(cat *Category) (*CategoryWithSpend, error) {
				return &CategoryWithSpend{
					CategoryID:     3,
					CategoryName:   cat.CategoryName,
					CategoryAmount: cat.CategoryAmount,
					TotalSpent:     decimal.Zero,
				}, nil
			}

			created, err := service.CreateCategory(&CreateCategoryDTO{
				CategoryName:   "Transport",
				CategoryAmount: decimal.NewFromInt(120),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.CategoryID).To(Equal(int64(3)))
			Expect(created.TotalSpent.Equal(decimal.Zero)).To(BeTrue())
		})

		It("should reject a zero budget without touching the store", func() {
			_, err := service.CreateCategory(&CreateCategoryDTO{
				CategoryName:   "Transport",
				CategoryAmount: decimal.Zero,
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			Expect(appErr.Message).To(Equal("categoryAmount must be positive"))
			Expect(repo.createCalls).To(Equal(0))
		})

		It("should reject a missing name", func() {
			_, err := service.CreateCategory(&CreateCategoryDTO{
				CategoryAmount: decimal.NewFromInt(50),
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Message).To(Equal("categoryName is required"))
		})
	})

	Describe("UpdateCategory", func() {
		It("should surface a missing category as not found", func() {
			repo.updateFn = func(cat *Category) (*Category, error) {
				return nil, ErrCategoryNotFound
			}

			_, err := service.UpdateCategory(&UpdateCategoryDTO{
				CategoryID:     99,
				CategoryName:   "Ghost",
				CategoryAmount: decimal.NewFromInt(1),
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeNotFound))
		})

		It("should reject a missing categoryId", func() {
			_, err := service.UpdateCategory(&UpdateCategoryDTO{
				CategoryName:   "Food",
				CategoryAmount: decimal.NewFromInt(1),
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Message).To(Equal("categoryId is required"))
		})
	})

	Describe("DeleteCategory", func() {
		It("should hide store failures behind the generic message", func() {
			repo.deleteFn = func(id int64) error {
				return errors.New("deadlock detected")
			}

			err := service.DeleteCategory(5)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeInternal))
			Expect(appErr.Message).To(Equal(internal.GenericStoreError))
		})
	})

	Describe("BudgetVsSpend", func() {
		It("should normalize nil halves to empty slices", func() {
			repo.budgetVsSpendFn = func() ([]*BudgetRow, []*SpendRow, error) {
				return nil, nil, nil
			}

			budgets, spends, err := service.BudgetVsSpend()
			Expect(err).NotTo(HaveOccurred())
			Expect(budgets).NotTo(BeNil())
			Expect(budgets).To(BeEmpty())
			Expect(spends).NotTo(BeNil())
			Expect(spends).To(BeEmpty())
		})
	})

	Describe("ListCategoriesWithSpend", func() {
		It("should turn a nil result into an empty slice", func() {
			repo.listWithSpendFn = func() ([]*CategoryWithSpend, error) { return nil, nil }

			categories, err := service.ListCategoriesWithSpend()
			Expect(err).NotTo(HaveOccurred())
			Expect(categories).NotTo(BeNil())
			Expect(categories).To(BeEmpty())
		})

		It("should wrap store failures with the generic message", func() {
			repo.listWithSpendFn = func() ([]*CategoryWithSpend, error) {
				return nil, errors.New("connection refused")
			}

			_, err := service.ListCategoriesWithSpend()
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Message).To(Equal(internal.GenericStoreError))
		})
	})
})
