package purchase

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is a dated spend event against a category.
type Purchase struct {
	PurchaseID  int64           `json:"purchaseId" gorm:"column:purchaseId;primaryKey"`
	CategoryID  int64           `json:"categoryId" gorm:"column:categoryId;not null"`
	Description string          `json:"description" gorm:"column:description;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"column:amount;type:numeric;not null"`
	Date        time.Time       `json:"date" gorm:"column:date;type:date;not null"`
}

func (Purchase) TableName() string {
	return "purchases"
}

// JoinedPurchase is the display-ready shape: a purchase together with the
// name of its category. Write operations always respond with this shape.
type JoinedPurchase struct {
	PurchaseID  int64           `json:"purchaseId" gorm:"column:purchaseId"`
	CategoryID  int64           `json:"categoryId" gorm:"column:categoryId"`
	Description string          `json:"description" gorm:"column:description"`
	Amount      decimal.Decimal `json:"amount" gorm:"column:amount"`
	Date        time.Time       `json:"date" gorm:"column:date"`
	Category    string          `json:"category" gorm:"column:category"`
}

// DateCount is the number of purchases made on one date.
type DateCount struct {
	Date  time.Time `json:"date" gorm:"column:date"`
	Count int64     `json:"count" gorm:"column:count"`
}

// DateAmount is the summed purchase amount for one date.
type DateAmount struct {
	Date   time.Time       `json:"date" gorm:"column:date"`
	Amount decimal.Decimal `json:"amount" gorm:"column:amount"`
}

// CategorySpending is the summed purchase amount for one category.
type CategorySpending struct {
	CategoryID   int64           `json:"categoryId" gorm:"column:categoryId"`
	Amount       decimal.Decimal `json:"amount" gorm:"column:amount"`
	CategoryName string          `json:"categoryName" gorm:"column:categoryName"`
}

// CategoryCount is the number of purchases made against one category.
type CategoryCount struct {
	Purchases    int64  `json:"purchases" gorm:"column:purchases"`
	CategoryName string `json:"categoryName" gorm:"column:categoryName"`
}

var ErrPurchaseNotFound = errors.New("purchase not found")
