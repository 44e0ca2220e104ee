package postgres

import (
	"github.com/frahmantamala/budget-tracker/internal/category"
	"gorm.io/gorm"
)

const listWithSpendQuery = `
	SELECT c."categoryId", c."categoryName", c."categoryAmount", COALESCE(SUM(p."amount"), 0) AS "totalSpent"
	  FROM "categories" c
	  LEFT JOIN "purchases" p ON p."categoryId" = c."categoryId"
	 GROUP BY c."categoryId", c."categoryName", c."categoryAmount"`

// CategoryRepository implements category.RepositoryAPI using GORM
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.RepositoryAPI {
	return &CategoryRepository{db: db}
}

// ListWithSpend joins categories against their purchases. The outer join
// keeps categories with no purchases, reporting totalSpent as zero.
func (r *CategoryRepository) ListWithSpend() ([]*category.CategoryWithSpend, error) {
	var categories []*category.CategoryWithSpend
	err := r.db.Raw(listWithSpendQuery + ` ORDER BY c."categoryId" DESC`).Scan(&categories).Error
	return categories, err
}

// Create inserts the category and re-reads it through the spend aggregation,
// inside one transaction, so the returned shape always carries totalSpent.
func (r *CategoryRepository) Create(cat *category.Category) (*category.CategoryWithSpend, error) {
	var created category.CategoryWithSpend
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cat).Error; err != nil {
			return err
		}
		return tx.Raw(listWithSpendQuery+` HAVING c."categoryId" = ?`, cat.CategoryID).
			Scan(&created).Error
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces name and amount of an existing category.
func (r *CategoryRepository) Update(cat *category.Category) (*category.Category, error) {
	res := r.db.Model(&category.Category{}).
		Where(`"categoryId" = ?`, cat.CategoryID).
		Updates(map[string]interface{}{
			"categoryName":   cat.CategoryName,
			"categoryAmount": cat.CategoryAmount,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, category.ErrCategoryNotFound
	}

	var updated category.Category
	if err := r.db.Where(`"categoryId" = ?`, cat.CategoryID).First(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the category and every purchase and note referencing it.
// All three deletes run in one transaction; dependent rows go first to keep
// the foreign keys satisfied.
func (r *CategoryRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM "purchases" WHERE "categoryId" = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM "notes" WHERE "categoryId" = ?`, id).Error; err != nil {
			return err
		}
		return tx.Exec(`DELETE FROM "categories" WHERE "categoryId" = ?`, id).Error
	})
}

// BudgetVsSpend returns the budget ceilings and the actual spend as two
// independent result sets, both ordered by category name descending. The
// spend side is an inner join: categories without purchases are excluded.
func (r *CategoryRepository) BudgetVsSpend() ([]*category.BudgetRow, []*category.SpendRow, error) {
	var budgets []*category.BudgetRow
	err := r.db.Raw(`
		SELECT SUM("categoryAmount") AS "categoryAmount", "categoryName"
		  FROM "categories"
		 GROUP BY "categoryName"
		 ORDER BY "categoryName" DESC`).Scan(&budgets).Error
	if err != nil {
		return nil, nil, err
	}

	var spends []*category.SpendRow
	err = r.db.Raw(`
		SELECT SUM(p."amount") AS "totalSpent", c."categoryName"
		  FROM "purchases" p
		  JOIN "categories" c ON c."categoryId" = p."categoryId"
		 GROUP BY c."categoryName"
		 ORDER BY c."categoryName" DESC`).Scan(&spends).Error
	if err != nil {
		return nil, nil, err
	}

	return budgets, spends, nil
}
