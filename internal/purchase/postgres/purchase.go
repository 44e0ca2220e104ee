package postgres

import (
	"github.com/frahmantamala/budget-tracker/internal/purchase"
	"gorm.io/gorm"
)

const joinedQuery = `
	SELECT p."purchaseId", p."categoryId", p."description", p."amount", p."date", c."categoryName" AS "category"
	  FROM "purchases" p
	  JOIN "categories" c ON c."categoryId" = p."categoryId"`

// PurchaseRepository implements purchase.RepositoryAPI using GORM
type PurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) purchase.RepositoryAPI {
	return &PurchaseRepository{db: db}
}

// ListJoined returns purchases with their category name, newest first.
func (r *PurchaseRepository) ListJoined() ([]*purchase.JoinedPurchase, error) {
	var purchases []*purchase.JoinedPurchase
	err := r.db.Raw(joinedQuery + ` ORDER BY p."purchaseId" DESC`).Scan(&purchases).Error
	return purchases, err
}

// Create inserts the purchase and re-reads the joined shape in one
// transaction.
func (r *PurchaseRepository) Create(p *purchase.Purchase) (*purchase.JoinedPurchase, error) {
	var created purchase.JoinedPurchase
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return tx.Raw(joinedQuery+` WHERE p."purchaseId" = ?`, p.PurchaseID).
			Scan(&created).Error
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces category, description and amount, then re-reads the
// joined shape. A vanished row yields ErrPurchaseNotFound.
func (r *PurchaseRepository) Update(p *purchase.Purchase) (*purchase.JoinedPurchase, error) {
	var updated purchase.JoinedPurchase
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&purchase.Purchase{}).
			Where(`"purchaseId" = ?`, p.PurchaseID).
			Updates(map[string]interface{}{
				"categoryId":  p.CategoryID,
				"description": p.Description,
				"amount":      p.Amount,
			})
		if res.Error != nil {
			return res.Error
		}

		reread := tx.Raw(joinedQuery+` WHERE p."purchaseId" = ?`, p.PurchaseID).Scan(&updated)
		if reread.Error != nil {
			return reread.Error
		}
		if reread.RowsAffected == 0 {
			return purchase.ErrPurchaseNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PurchaseRepository) Delete(id int64) error {
	return r.db.Where(`"purchaseId" = ?`, id).Delete(&purchase.Purchase{}).Error
}

// CountByDate groups purchases by date, most recent date first.
func (r *PurchaseRepository) CountByDate() ([]*purchase.DateCount, error) {
	var counts []*purchase.DateCount
	err := r.db.Raw(`
		SELECT "date", COUNT("purchaseId") AS "count"
		  FROM "purchases"
		 GROUP BY "date"
		 ORDER BY "date" DESC`).Scan(&counts).Error
	return counts, err
}

// AmountByDate sums purchase amounts per date, most recent date first.
func (r *PurchaseRepository) AmountByDate() ([]*purchase.DateAmount, error) {
	var amounts []*purchase.DateAmount
	err := r.db.Raw(`
		SELECT "date", SUM("amount") AS "amount"
		  FROM "purchases"
		 GROUP BY "date"
		 ORDER BY "date" DESC`).Scan(&amounts).Error
	return amounts, err
}

// SpendingByCategory sums purchase amounts per category. The inner join
// excludes categories without purchases.
func (r *PurchaseRepository) SpendingByCategory() ([]*purchase.CategorySpending, error) {
	var spending []*purchase.CategorySpending
	err := r.db.Raw(`
		SELECT p."categoryId", SUM(p."amount") AS "amount", c."categoryName"
		  FROM "purchases" p
		  JOIN "categories" c ON c."categoryId" = p."categoryId"
		 GROUP BY p."categoryId", c."categoryName"
		 ORDER BY c."categoryName" DESC`).Scan(&spending).Error
	return spending, err
}

// CountByCategory counts purchases per category name, excluding categories
// without purchases.
func (r *PurchaseRepository) CountByCategory() ([]*purchase.CategoryCount, error) {
	var counts []*purchase.CategoryCount
	err := r.db.Raw(`
		SELECT COUNT(p."purchaseId") AS "purchases", c."categoryName"
		  FROM "purchases" p
		  JOIN "categories" c ON c."categoryId" = p."categoryId"
		 GROUP BY c."categoryName"
		 ORDER BY c."categoryName" DESC`).Scan(&counts).Error
	return counts, err
}
