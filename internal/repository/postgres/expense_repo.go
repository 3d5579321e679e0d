package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/nurture-api/internal/domain/entity"
)

// ExpenseRepo implements repository.ExpenseRepository.
type ExpenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) *ExpenseRepo {
	return &ExpenseRepo{db: db}
}

func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	return r.db.Create(expense).Error
}

func (r *ExpenseRepo) ListByUser(userID string) ([]entity.Expense, error) {
	var expenses []entity.Expense
	err := r.db.Where("user_id = ?", userID).Order("incurred_at DESC").Find(&expenses).Error
	return expenses, err
}
