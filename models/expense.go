package models

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseCategory groups expenses for reporting.
type ExpenseCategory string

const (
	ExpenseCategoryCulture ExpenseCategory = "Culture"
	ExpenseCategoryFarm    ExpenseCategory = "Farm"
	ExpenseCategorySalary  ExpenseCategory = "Salary"
)

// Expense is a single cost entry, optionally scoped to a pond.
type Expense struct {
	ID          uuid.UUID       `bson:"_id" json:"id"`
	Description string          `bson:"description" json:"description"`
	Category    ExpenseCategory `bson:"category" json:"category"`
	Amount      float64         `bson:"amount" json:"amount"`
	Date        time.Time       `bson:"date" json:"date"`
	SeasonID    uuid.UUID       `bson:"season_id" json:"seasonId"`
	PondID      *uuid.UUID      `bson:"pond_id,omitempty" json:"pondId,omitempty"`
	DeletedAt   *time.Time      `bson:"deleted_at,omitempty" json:"deletedAt,omitempty"`
	CreatedAt   time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updated_at" json:"updatedAt"`
}

type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Category    ExpenseCategory `json:"category" binding:"required,oneof=Culture Farm Salary"`
	Amount      float64         `json:"amount" binding:"required,gt=0"`
	Date        time.Time       `json:"date" binding:"required"`
	SeasonID    uuid.UUID       `json:"seasonId" binding:"required"`
	PondID      *uuid.UUID      `json:"pondId"`
}

type UpdateExpenseRequest struct {
	Description *string          `json:"description"`
	Category    *ExpenseCategory `json:"category" binding:"omitempty,oneof=Culture Farm Salary"`
	Amount      *float64         `json:"amount" binding:"omitempty,gt=0"`
	Date        *time.Time       `json:"date"`
	PondID      *uuid.UUID       `json:"pondId"`
}

// ExpenseFilter narrows expense listings.
type ExpenseFilter struct {
	SeasonID *uuid.UUID
	PondID   *uuid.UUID
	Category ExpenseCategory
	From     *time.Time
	To       *time.Time
}

// CategoryTotal is one slice of the expense rollup used by dashboards.
type CategoryTotal struct {
	Category ExpenseCategory `bson:"_id" json:"category"`
	Total    float64         `bson:"total" json:"total"`
}
