package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/yourusername/nurture-api/internal/domain/entity"
	"github.com/yourusername/nurture-api/internal/domain/repository"
	apperrors "github.com/yourusername/nurture-api/internal/pkg/errors"
)

// ExpenseService manages expense records for the authenticated user.
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// Create adds an expense record.
func (s *ExpenseService) Create(userID, title, category string, amountCents int64, incurredAt time.Time) (*entity.Expense, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if incurredAt.IsZero() {
		incurredAt = time.Now()
	}

	expense := &entity.Expense{
		UserID:      userID,
		Title:       title,
		AmountCents: amountCents,
		Category:    strings.TrimSpace(category),
		IncurredAt:  incurredAt,
	}
	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return expense, nil
}

// List returns the user's expenses, newest first.
func (s *ExpenseService) List(userID string) ([]entity.Expense, error) {
	return s.expenseRepo.ListByUser(userID)
}
