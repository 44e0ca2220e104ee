package purchase

import (
	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/shopspring/decimal"
)

// CreatePurchaseDTO is the request payload for recording a purchase. The
// date is not accepted from the client; it is set server-side.
type CreatePurchaseDTO struct {
	CategoryID  int64           `json:"categoryId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Validate rejects missing fields before any store access. A zero amount
// counts as missing: purchases must carry a positive amount.
func (dto CreatePurchaseDTO) Validate() error {
	if dto.CategoryID == 0 {
		return internal.NewValidationError("categoryId is required")
	}
	if dto.Description == "" {
		return internal.NewValidationError("description is required")
	}
	if dto.Amount.Sign() <= 0 {
		return internal.NewValidationError("amount must be positive")
	}
	return nil
}

// UpdatePurchaseDTO is the request payload for replacing a purchase's
// category, description and amount. The date is never updated.
type UpdatePurchaseDTO struct {
	PurchaseID  int64           `json:"purchaseId"`
	CategoryID  int64           `json:"categoryId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

func (dto UpdatePurchaseDTO) Validate() error {
	if dto.PurchaseID == 0 {
		return internal.NewValidationError("purchaseId is required")
	}
	if dto.CategoryID == 0 {
		return internal.NewValidationError("categoryId is required")
	}
	if dto.Description == "" {
		return internal.NewValidationError("description is required")
	}
	if dto.Amount.Sign() <= 0 {
		return internal.NewValidationError("amount must be positive")
	}
	return nil
}
