package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/cache"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/models"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/services"
)

// ExpenseController handles HTTP requests for expenses.
type ExpenseController struct {
	service services.ExpenseService
	store   *cache.Store
}

// NewExpenseController creates a new ExpenseController.
func NewExpenseController(service services.ExpenseService, store *cache.Store) *ExpenseController {
	return &ExpenseController{service: service, store: store}
}

func (ec *ExpenseController) invalidate() {
	if ec.store == nil {
		return
	}
	ec.store.InvalidatePrefix("/api/expenses")
	ec.store.InvalidatePrefix("/api/dashboard")
}

func expenseFilterFromQuery(c *gin.Context) (models.ExpenseFilter, error) {
	var filter models.ExpenseFilter
	var err error
	if filter.SeasonID, err = uuidQuery(c, "seasonId"); err != nil {
		return filter, errors.New("invalid seasonId")
	}
	if filter.PondID, err = uuidQuery(c, "pondId"); err != nil {
		return filter, errors.New("invalid pondId")
	}
	filter.Category = models.ExpenseCategory(c.Query("category"))
	if filter.From, err = timeQuery(c, "from"); err != nil {
		return filter, errors.New("invalid from date")
	}
	if filter.To, err = timeQuery(c, "to"); err != nil {
		return filter, errors.New("invalid to date")
	}
	return filter, nil
}

// ListExpenses returns expenses matching the query filters.
// GET /api/expenses?seasonId=&pondId=&category=&from=&to=
func (ec *ExpenseController) ListExpenses(c *gin.Context) (int, interface{}) {
	filter, err := expenseFilterFromQuery(c)
	if err != nil {
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	}

	expenses, err := ec.service.ListExpenses(c.Request.Context(), filter)
	if err != nil {
		return http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"}
	}
	return http.StatusOK, expenses
}

// GetExpense returns one expense.
// GET /api/expenses/:id
func (ec *ExpenseController) GetExpense(c *gin.Context) (int, interface{}) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return http.StatusBadRequest, gin.H{"error": "Invalid expense ID"}
	}

	expense, err := ec.service.GetExpense(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrExpenseNotFound) {
			return http.StatusNotFound, gin.H{"error": "Expense not found"}
		}
		return http.StatusInternalServerError, gin.H{"error": "Failed to fetch expense"}
	}
	return http.StatusOK, expense
}

// CreateExpense creates an expense.
// POST /api/expenses
func (ec *ExpenseController) CreateExpense(c *gin.Context) {
	var req models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	expense, err := ec.service.CreateExpense(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}

	ec.invalidate()
	c.JSON(http.StatusCreated, expense)
}

// UpdateExpense updates an expense.
// PUT /api/expenses/:id
func (ec *ExpenseController) UpdateExpense(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID"})
		return
	}

	var req models.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	expense, err := ec.service.UpdateExpense(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrExpenseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense"})
		return
	}

	ec.invalidate()
	c.JSON(http.StatusOK, expense)
}

// DeleteExpense soft-deletes an expense.
// DELETE /api/expenses/:id
func (ec *ExpenseController) DeleteExpense(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID"})
		return
	}

	if err := ec.service.DeleteExpense(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrExpenseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}

	ec.invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}
