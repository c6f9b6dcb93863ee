package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/models"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/repository"
	"go.mongodb.org/mongo-driver/bson"
)

// ErrExpenseNotFound is returned when an expense lookup misses.
var ErrExpenseNotFound = errors.New("expense not found")

// ExpenseService manages cost entries and their category rollups.
type ExpenseService interface {
	CreateExpense(ctx context.Context, req *models.CreateExpenseRequest) (*models.Expense, error)
	GetExpense(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	ListExpenses(ctx context.Context, filter models.ExpenseFilter) ([]*models.Expense, error)
	UpdateExpense(ctx context.Context, id uuid.UUID, req *models.UpdateExpenseRequest) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	TotalsByCategory(ctx context.Context, filter models.ExpenseFilter) ([]models.CategoryTotal, error)
}

type expenseService struct {
	repo repository.ExpenseRepository
}

func NewExpenseService(repo repository.ExpenseRepository) ExpenseService {
	return &expenseService{repo: repo}
}

func (s *expenseService) CreateExpense(ctx context.Context, req *models.CreateExpenseRequest) (*models.Expense, error) {
	now := time.Now().UTC()
	expense := &models.Expense{
		ID:          uuid.New(),
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		SeasonID:    req.SeasonID,
		PondID:      req.PondID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return expense, nil
}

func (s *expenseService) GetExpense(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	expense, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, filter models.ExpenseFilter) ([]*models.Expense, error) {
	return s.repo.Find(ctx, filter)
}

func (s *expenseService) UpdateExpense(ctx context.Context, id uuid.UUID, req *models.UpdateExpenseRequest) (*models.Expense, error) {
	updates := bson.M{}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.PondID != nil {
		updates["pond_id"] = *req.PondID
	}

	if len(updates) > 0 {
		matched, err := s.repo.Update(ctx, id, updates)
		if err != nil {
			return nil, fmt.Errorf("failed to update expense: %w", err)
		}
		if matched == 0 {
			return nil, ErrExpenseNotFound
		}
	}
	return s.GetExpense(ctx, id)
}

func (s *expenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	matched, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if matched == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

func (s *expenseService) TotalsByCategory(ctx context.Context, filter models.ExpenseFilter) ([]models.CategoryTotal, error) {
	return s.repo.TotalByCategory(ctx, filter)
}
