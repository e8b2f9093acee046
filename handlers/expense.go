package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"expense-api/middleware"
	"expense-api/models"
	"expense-api/services"
)

// maxRangeDays bounds the inclusive startDate..endDate span on list queries.
const maxRangeDays = 30

type ExpenseHandler struct {
	service *services.ExpenseService
}

func NewExpenseHandler(service *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

// Create records a new expense owned by the requesting user.
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var in models.ExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if violations := in.Validate(time.Now()); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return
	}

	expense := in.ToExpense(userID)
	if err := h.service.Create(c.Request.Context(), expense); err != nil {
		slog.ErrorContext(c.Request.Context(), "Failed to create expense", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/expenses/%d", expense.ID))
	c.JSON(http.StatusCreated, expense)
}

// List returns the requesting user's expenses matching the optional title
// and date-range filters, paginated.
func (h *ExpenseHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	filter, err := parseExpenseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if filter.StartDate != nil && filter.EndDate != nil {
		days := int(filter.EndDate.Sub(*filter.StartDate).Hours() / 24)
		if days < 0 || days > maxRangeDays {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The date range should be within 30 days."})
			return
		}
	}

	list, err := h.service.List(c.Request.Context(), userID, filter)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Failed to list expenses", "error", err, "userId", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// Get returns a single expense by id.
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense id"})
		return
	}

	expense, err := h.service.GetByID(c.Request.Context(), id)
	if errors.Is(err, services.ErrExpenseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Failed to fetch expense", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expense"})
		return
	}

	c.JSON(http.StatusOK, expense)
}

// Update overwrites the mutable fields of an expense.
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense id"})
		return
	}

	var in models.ExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if violations := in.Validate(time.Now()); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return
	}

	expense, err := h.service.Update(c.Request.Context(), id, in)
	if errors.Is(err, services.ErrExpenseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Failed to update expense", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense"})
		return
	}

	c.JSON(http.StatusOK, expense)
}

// Delete permanently removes an expense.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense id"})
		return
	}

	err = h.service.Delete(c.Request.Context(), id)
	if errors.Is(err, services.ErrExpenseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Failed to delete expense", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
