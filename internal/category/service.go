package category

import (
	"errors"
	"log/slog"

	"github.com/frahmantamala/budget-tracker/internal"
)

type RepositoryAPI interface {
	ListWithSpend() ([]*CategoryWithSpend, error)
	Create(cat *Category) (*CategoryWithSpend, error)
	Update(cat *Category) (*Category, error)
	Delete(id int64) error
	BudgetVsSpend() ([]*BudgetRow, []*SpendRow, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListCategoriesWithSpend returns every category with its summed purchase
// amounts, newest category first.
func (s *Service) ListCategoriesWithSpend() ([]*CategoryWithSpend, error) {
	categories, err := s.repo.ListWithSpend()
	if err != nil {
		s.logger.Error("failed to list categories", "error", err)
		return nil, internal.NewInternalError(internal.GenericStoreError, err)
	}
	if categories == nil {
		categories = []*CategoryWithSpend{}
	}
	return categories, nil
}

// CreateCategory inserts a category and returns it in the same aggregated
// shape the list endpoint uses, so a brand-new category carries totalSpent 0.
func (s *Service) CreateCategory(dto *CreateCategoryDTO) (*CategoryWithSpend, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("category validation failed", "error", err)
		return nil, err
	}

	cat := &Category{
		CategoryName:   dto.CategoryName,
		CategoryAmount: dto.CategoryAmount,
	}

	created, err := s.repo.Create(cat)
	if err != nil {
		s.logger.Error("failed to create category", "error", err, "categoryName", dto.CategoryName)
		return nil, internal.NewInternalError(internal.GenericStoreError, err)
	}

	s.logger.Info("category created", "categoryId", created.CategoryID, "categoryName", created.CategoryName)
	return created, nil
}

// UpdateCategory replaces name and amount of an existing category.
func (s *Service) UpdateCategory(dto *UpdateCategoryDTO) (*Category, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("category validation failed", "error", err)
		return nil, err
	}

	cat := &Category{
		CategoryID:     dto.CategoryID,
		CategoryName:   dto.CategoryName,
		CategoryAmount: dto.CategoryAmount,
	}

	updated, err := s.repo.Update(cat)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return nil, internal.NewNotFoundError("category not found")
		}
		s.logger.Error("failed to update category", "error", err, "categoryId", dto.CategoryID)
		return nil, internal.NewInternalError(internal.GenericStoreError, err)
	}

	return updated, nil
}

// DeleteCategory removes a category together with its purchases and notes.
// The repository runs all three deletes in one transaction, so no orphaned
// rows survive a partial failure.
func (s *Service) DeleteCategory(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete category", "error", err, "categoryId", id)
		return internal.NewInternalError(internal.GenericStoreError, err)
	}

	s.logger.Info("category deleted", "categoryId", id)
	return nil
}

// BudgetVsSpend returns the two halves of the budget report. They are not
// merged: the caller correlates them by category name.
func (s *Service) BudgetVsSpend() ([]*BudgetRow, []*SpendRow, error) {
	budgets, spends, err := s.repo.BudgetVsSpend()
	if err != nil {
		s.logger.Error("failed to build budget report", "error", err)
		return nil, nil, internal.NewInternalError(internal.GenericStoreError, err)
	}
	if budgets == nil {
		budgets = []*BudgetRow{}
	}
	if spends == nil {
		spends = []*SpendRow{}
	}
	return budgets, spends, nil
}
