package category

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Category is a spending bucket with a budget ceiling.
type Category struct {
	CategoryID     int64           `json:"categoryId" gorm:"column:categoryId;primaryKey"`
	CategoryName   string          `json:"categoryName" gorm:"column:categoryName;not null"`
	CategoryAmount decimal.Decimal `json:"categoryAmount" gorm:"column:categoryAmount;type:numeric;not null"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryWithSpend is a Category joined with the sum of its purchases.
// TotalSpent is zero, never absent, for categories without purchases.
type CategoryWithSpend struct {
	CategoryID     int64           `json:"categoryId" gorm:"column:categoryId"`
	CategoryName   string          `json:"categoryName" gorm:"column:categoryName"`
	CategoryAmount decimal.Decimal `json:"categoryAmount" gorm:"column:categoryAmount"`
	TotalSpent     decimal.Decimal `json:"totalSpent" gorm:"column:totalSpent"`
}

// BudgetRow is one entry of the budget half of the budget-vs-spend report.
type BudgetRow struct {
	CategoryAmount decimal.Decimal `json:"categoryAmount" gorm:"column:categoryAmount"`
	CategoryName   string          `json:"categoryName" gorm:"column:categoryName"`
}

// SpendRow is one entry of the spend half of the budget-vs-spend report.
// Categories without purchases do not appear here.
type SpendRow struct {
	TotalSpent   decimal.Decimal `json:"totalSpent" gorm:"column:totalSpent"`
	CategoryName string          `json:"categoryName" gorm:"column:categoryName"`
}

var ErrCategoryNotFound = errors.New("category not found")
