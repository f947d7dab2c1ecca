package repository

import (
	"context"
	"time"

	"concierge/internal/domain"

	"gorm.io/gorm"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

type expenseModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	OwnerID    int64     `gorm:"column:owner_id"`
	Label      string    `gorm:"column:label"`
	Amount     float64   `gorm:"column:amount"`
	IncurredAt time.Time `gorm:"column:incurred_at"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (expenseModel) TableName() string { return "expenses" }

func toDomainExpense(m expenseModel) *domain.Expense {
	return &domain.Expense{
		ID:         m.ID,
		OwnerID:    m.OwnerID,
		Label:      m.Label,
		Amount:     m.Amount,
		IncurredAt: m.IncurredAt,
		CreatedAt:  m.CreatedAt,
	}
}

func toExpenseModel(e *domain.Expense) expenseModel {
	return expenseModel{
		ID:         e.ID,
		OwnerID:    e.OwnerID,
		Label:      e.Label,
		Amount:     e.Amount,
		IncurredAt: e.IncurredAt,
		CreatedAt:  e.CreatedAt,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	m := toExpenseModel(e)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainExpense(m)
	return nil
}

// ListByOwner returns an owner's expenses, newest first.
func (r *ExpenseRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Expense, error) {
	var models []expenseModel
	tx := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("incurred_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	expenses := make([]*domain.Expense, 0, len(models))
	for _, m := range models {
		expenses = append(expenses, toDomainExpense(m))
	}
	return expenses, nil
}

// SumByOwner totals the expense ledger for one owner.
func (r *ExpenseRepository) SumByOwner(ctx context.Context, ownerID int64) (float64, error) {
	var total *float64
	tx := r.db.WithContext(ctx).
		Model(&expenseModel{}).
		Select("SUM(amount)").
		Where("owner_id = ?", ownerID).
		Scan(&total)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
