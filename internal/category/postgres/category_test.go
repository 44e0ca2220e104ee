package postgres_test

import (
	"testing"
	"time"

	"github.com/frahmantamala/budget-tracker/internal/category"
	categoryPostgres "github.com/frahmantamala/budget-tracker/internal/category/postgres"
	"github.com/frahmantamala/budget-tracker/internal/note"
	"github.com/frahmantamala/budget-tracker/internal/purchase"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestCategoryPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Category Postgres Suite")
}

var _ = Describe("Category Repository", func() {
	var (
		db   *gorm.DB
		repo category.RepositoryAPI
	)

	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	addCategory := func(name string, amount int64) *category.Category {
		cat := &category.Category{CategoryName: name, CategoryAmount: decimal.NewFromInt(amount)}
		Expect(db.Create(cat).Error).NotTo(HaveOccurred())
		return cat
	}

	addPurchase := func(categoryID int64, description string, amount int64) {
		p := &purchase.Purchase{
			CategoryID:  categoryID,
			Description: description,
			Amount:      decimal.NewFromInt(amount),
			Date:        day,
		}
		Expect(db.Create(p).Error).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&category.Category{}, &purchase.Purchase{}, &note.Note{})
		Expect(err).NotTo(HaveOccurred())

		repo = categoryPostgres.NewCategoryRepository(db)
	})

	Describe("ListWithSpend", func() {
		It("should report totalSpent 0 for categories without purchases", func() {
			addCategory("Groceries", 400)

			categories, err := repo.ListWithSpend()
			Expect(err).NotTo(HaveOccurred())
			Expect(categories).To(HaveLen(1))
			Expect(categories[0].TotalSpent.Equal(decimal.Zero)).To(BeTrue())
		})

		It("should sum purchase amounts per category", func() {
			groceries := addCategory("Groceries", 400)
			dining := addCategory("Dining Out", 150)
			addPurchase(groceries.CategoryID, "weekly shop", 80)
			addPurchase(groceries.CategoryID, "top-up shop", 20)
			addPurchase(dining.CategoryID, "pizza", 30)

			categories, err := repo.ListWithSpend()
			Expect(err).NotTo(HaveOccurred())
			Expect(categories).To(HaveLen(2))

			byName := map[string]decimal.Decimal{}
			for _, c := range categories {
				byName[c.CategoryName] = c.TotalSpent
			}
			Expect(byName["Groceries"].Equal(decimal.NewFromInt(100))).To(BeTrue())
			Expect(byName["Dining Out"].Equal(decimal.NewFromInt(30))).To(BeTrue())
		})

		It("should order categories by categoryId descending", func() {
			first := addCategory("First", 100)
			second := addCategory("Second", 100)

			categories, err := repo.ListWithSpend()
			Expect(err).NotTo(HaveOccurred())
			Expect(categories[0].CategoryID).To(Equal(second.CategoryID))
			Expect(categories[1].CategoryID).To(Equal(first.CategoryID))
		})
	})

	Describe("Create", func() {
		It("should return the aggregated shape with totalSpent 0", func() {
			created, err := repo.Create(&category.Category{
				CategoryName:   "Transport",
				CategoryAmount: decimal.NewFromInt(120),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.CategoryID).To(BeNumerically(">", 0))
			Expect(created.CategoryName).To(Equal("Transport"))
			Expect(created.CategoryAmount.Equal(decimal.NewFromInt(120))).To(BeTrue())
			Expect(created.TotalSpent.Equal(decimal.Zero)).To(BeTrue())
		})
	})

	Describe("Update", func() {
		It("should replace name and amount", func() {
			cat := addCategory("Groceries", 400)

			updated, err := repo.Update(&category.Category{
				CategoryID:     cat.CategoryID,
				CategoryName:   "Food",
				CategoryAmount: decimal.NewFromInt(500),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.CategoryName).To(Equal("Food"))
			Expect(updated.CategoryAmount.Equal(decimal.NewFromInt(500))).To(BeTrue())
		})

		It("should return ErrCategoryNotFound for a missing category", func() {
			_, err := repo.Update(&category.Category{
				CategoryID:     999,
				CategoryName:   "Ghost",
				CategoryAmount: decimal.NewFromInt(1),
			})
			Expect(err).To(MatchError(category.ErrCategoryNotFound))
		})
	})

	Describe("Delete", func() {
		It("should remove the category and all dependent purchases and notes", func() {
			groceries := addCategory("Groceries", 400)
			other := addCategory("Other", 50)
			addPurchase(groceries.CategoryID, "weekly shop", 80)
			addPurchase(other.CategoryID, "misc", 10)
			Expect(db.Create(&note.Note{
				CategoryID: groceries.CategoryID,
				Category:   "Groceries",
				Note:       "buy less snacks",
			}).Error).NotTo(HaveOccurred())

			Expect(repo.Delete(groceries.CategoryID)).To(Succeed())

			var categoryCount, purchaseCount, noteCount int64
			db.Model(&category.Category{}).Count(&categoryCount)
			db.Model(&purchase.Purchase{}).Where(`"categoryId" = ?`, groceries.CategoryID).Count(&purchaseCount)
			db.Model(&note.Note{}).Where(`"categoryId" = ?`, groceries.CategoryID).Count(&noteCount)

			Expect(categoryCount).To(Equal(int64(1)))
			Expect(purchaseCount).To(Equal(int64(0)))
			Expect(noteCount).To(Equal(int64(0)))

			// unrelated rows survive
			var otherPurchases int64
			db.Model(&purchase.Purchase{}).Where(`"categoryId" = ?`, other.CategoryID).Count(&otherPurchases)
			Expect(otherPurchases).To(Equal(int64(1)))
		})
	})

	Describe("BudgetVsSpend", func() {
		It("should return budgets and spends ordered by name descending", func() {
			alpha := addCategory("Alpha", 100)
			zulu := addCategory("Zulu", 300)
			addPurchase(alpha.CategoryID, "a", 40)
			addPurchase(zulu.CategoryID, "z", 250)

			budgets, spends, err := repo.BudgetVsSpend()
			Expect(err).NotTo(HaveOccurred())

			Expect(budgets).To(HaveLen(2))
			Expect(budgets[0].CategoryName).To(Equal("Zulu"))
			Expect(budgets[1].CategoryName).To(Equal("Alpha"))
			Expect(budgets[0].CategoryAmount.Equal(decimal.NewFromInt(300))).To(BeTrue())

			Expect(spends).To(HaveLen(2))
			Expect(spends[0].CategoryName).To(Equal("Zulu"))
			Expect(spends[0].TotalSpent.Equal(decimal.NewFromInt(250))).To(BeTrue())
			Expect(spends[1].CategoryName).To(Equal("Alpha"))
			Expect(spends[1].TotalSpent.Equal(decimal.NewFromInt(40))).To(BeTrue())
		})

		It("should exclude categories without purchases from the spend half only", func() {
			spent := addCategory("Spent", 100)
			addCategory("Untouched", 200)
			addPurchase(spent.CategoryID, "s", 10)

			budgets, spends, err := repo.BudgetVsSpend()
			Expect(err).NotTo(HaveOccurred())
			Expect(budgets).To(HaveLen(2))
			Expect(spends).To(HaveLen(1))
			Expect(spends[0].CategoryName).To(Equal("Spent"))
		})
	})
})
