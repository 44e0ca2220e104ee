package purchase

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/budget-tracker/internal"
)

type RepositoryAPI interface {
	ListJoined() ([]*JoinedPurchase, error)
	Create(p *Purchase) (*JoinedPurchase, error)
	Update(p *Purchase) (*JoinedPurchase, error)
	Delete(id int64) error
	CountByDate() ([]*DateCount, error)
	AmountByDate() ([]*DateAmount, error)
	SpendingByCategory() ([]*CategorySpending, error)
	CountByCategory() ([]*CategoryCount, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger

	// now is swapped out in tests
	now func() time.Time
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// ListPurchases returns every purchase joined with its category name,
// newest first.
func (s *Service) ListPurchases() ([]*JoinedPurchase, error) {
	purchases, err := s.repo.ListJoined()
	if err != nil {
		s.logger.Error("failed to list purchases", "error", err)
		return nil, internal.NewInternalError(internal.GenericStoreError, err)
	}
	if purchases == nil {
		purchases = []*JoinedPurchase{}
	}
	return purchases, nil
}

// CreatePurchase records a purchase dated today and returns the joined
// shape: callers never observe a purchase without its category name.
func (s *Service) CreatePurchase(dto *CreatePurchaseDTO) (*JoinedPurchase, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("purchase validation failed", "error", err)
		return nil, err
	}

	p := &Purchase{
		CategoryID:  dto.CategoryID,
		Description: dto.Description,
		Amount:      dto.Amount,
		Date:        s.today(),
	}

	created, err := s.repo.Create(p)
	if err != nil {
		s.logger.Error("failed to create purchase", "error", err, "categoryId", dto.CategoryID)
		return nil, internal.NewInternalError(internal.GenericStoreError, err)
	}

	s.logger.Info("purchase created", "purchaseId", created.PurchaseID, "categoryId", created.CategoryID)
	return created, nil
}

// UpdatePurchase replaces category, description and amount, then re-reads
// the joined shape. A purchase deleted between the update and the re-read
// surfaces as not found, not as an empty success.
func (s *Service) UpdatePurchase(dto *UpdatePurchaseDTO) (*JoinedPurchase, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("purchase validation failed", "error", err)
		return nil, err
	}

	p := &Purchase{
		PurchaseID:  dto.PurchaseID,
		CategoryID:  dto.CategoryID,
		Description: dto.Description,
		Amount:      dto.Amount,
	}

	updated, err := s.repo.Update(p)
	if err != nil {
		if errors.Is(err, ErrPurchaseNotFound) {
			return nil, internal.NewNotFoundError(fmt.Sprintf("cannot find purchase with purchaseId %d", dto.PurchaseID))
		}
		s.logger.Error("failed to update purchase", "error", err, "purchaseId", dto.PurchaseID)
		return nil, internal.NewInternalError(internal.GenericStoreError, err)
	}

	return updated, nil
}

func (s *Service) DeletePurchase(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete purchase", "error", err, "purchaseId", id)
		return internal.NewInternalError(internal.GenericStoreError, err)
	}
	return nil
}

// CountPurchasesByDate reports how many purchases were made on each date,
// most recent date first.
func (s *Service) CountPurchasesByDate() ([]*DateCount, error) {
	counts, err := s.repo.CountByDate()
	if err != nil {
		s.logger.Error("failed to count purchases by date", "error", err)
		return nil, internal.NewInternalError(internal.GenericStoreError, err)
	}
	if counts == nil {
		counts = []*DateCount{}
	}
	return counts, nil
}

// SumAmountByDate reports the total spend on each date, most recent first.
func (s *Service) SumAmountByDate() ([]*DateAmount, error) {
	amounts, err := s.repo.AmountByDate()
	if err != nil {
		s.logger.Error("failed to sum amounts by date", "error", err)
		return nil, internal.NewInternalError(internal.GenericStoreError, err)
	}
	if amounts == nil {
		amounts = []*DateAmount{}
	}
	return amounts, nil
}

// SpendingByCategory reports the summed spend per category. Categories
// without purchases do not appear.
func (s *Service) SpendingByCategory() ([]*CategorySpending, error) {
	spending, err := s.repo.SpendingByCategory()
	if err != nil {
		s.logger.Error("failed to sum spending by category", "error", err)
		return nil, internal.NewInternalError(internal.GenericStoreError, err)
	}
	if spending == nil {
		spending = []*CategorySpending{}
	}
	return spending, nil
}

// CountPurchasesByCategory reports the purchase count per category.
// Categories without purchases do not appear.
func (s *Service) CountPurchasesByCategory() ([]*CategoryCount, error) {
	counts, err := s.repo.CountByCategory()
	if err != nil {
		s.logger.Error("failed to count purchases by category", "error", err)
		return nil, internal.NewInternalError(internal.GenericStoreError, err)
	}
	if counts == nil {
		counts = []*CategoryCount{}
	}
	return counts, nil
}

// today is the server-side purchase date: midnight UTC of the current day,
// matching the store's date column granularity.
func (s *Service) today() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}
