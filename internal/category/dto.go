package category

import (
	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/shopspring/decimal"
)

// CreateCategoryDTO is the request payload for creating a category.
type CreateCategoryDTO struct {
	CategoryName   string          `json:"categoryName"`
	CategoryAmount decimal.Decimal `json:"categoryAmount"`
}

// Validate rejects missing fields before any store access. A zero amount
// counts as missing; the budget ceiling must be positive.
func (dto CreateCategoryDTO) Validate() error {
	if dto.CategoryName == "" {
		return internal.NewValidationError("categoryName is required")
	}
	if dto.CategoryAmount.Sign() <= 0 {
		return internal.NewValidationError("categoryAmount must be positive")
	}
	return nil
}

// UpdateCategoryDTO is the request payload for a full name/amount replace.
type UpdateCategoryDTO struct {
	CategoryID     int64           `json:"categoryId"`
	CategoryName   string          `json:"categoryName"`
	CategoryAmount decimal.Decimal `json:"categoryAmount"`
}

func (dto UpdateCategoryDTO) Validate() error {
	if dto.CategoryID == 0 {
		return internal.NewValidationError("categoryId is required")
	}
	if dto.CategoryName == "" {
		return internal.NewValidationError("categoryName is required")
	}
	if dto.CategoryAmount.Sign() <= 0 {
		return internal.NewValidationError("categoryAmount must be positive")
	}
	return nil
}
