package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Amounts are plain JSON numbers on the wire, not quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Categories an expense may be filed under.
const (
	CategoryFood      = "food"
	CategoryClothing  = "clothing"
	CategoryHousing   = "housing"
	CategoryTransport = "transport"
)

// Categories lists every permitted expense category.
var Categories = []string{CategoryFood, CategoryClothing, CategoryHousing, CategoryTransport}

// Expense is a single recorded outflow of money, owned by one user.
type Expense struct {
	ID         int64           `json:"id"`
	Title      string          `json:"title"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurredAt"`
	Category   string          `json:"category"`
	UserID     string          `json:"userId"`
}

// ExpenseInput is the client-supplied portion of an expense. The id and
// owner are always assigned server-side.
type ExpenseInput struct {
	Title      string          `json:"title"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurredAt"`
	Category   string          `json:"category"`
}

// FieldError describes a single validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks every business rule and returns the full list of
// violations; an empty slice means the input is valid. Rules are independent
// and all of them are evaluated.
func (in ExpenseInput) Validate(now time.Time) []FieldError {
	var violations []FieldError

	if !in.Amount.IsPositive() {
		violations = append(violations, FieldError{
			Field:   "amount",
			Message: "amount must be greater than 0",
		})
	}

	if !IsValidCategory(in.Category) {
		violations = append(violations, FieldError{
			Field:   "category",
			Message: fmt.Sprintf("category must be one of %v", Categories),
		})
	}

	if !in.OccurredAt.Before(now.AddDate(1, 0, 0)) {
		violations = append(violations, FieldError{
			Field:   "occurredAt",
			Message: "occurredAt must be earlier than one year from now",
		})
	}

	return violations
}

// IsValidCategory reports whether c is one of the permitted categories.
func IsValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ToExpense builds a persistable expense owned by userID.
func (in ExpenseInput) ToExpense(userID string) *Expense {
	return &Expense{
		Title:      in.Title,
		Amount:     in.Amount,
		OccurredAt: in.OccurredAt,
		Category:   in.Category,
		UserID:     userID,
	}
}

// ExpenseFilter narrows a list query. Zero values mean "no filter".
type ExpenseFilter struct {
	Title     string
	StartDate *time.Time
	EndDate   *time.Time
	PageIndex int
	PageSize  int
}

// ExpenseList is the paginated list response: the total number of matching
// rows before pagination plus one page of results.
type ExpenseList struct {
	Total    int64      `json:"total"`
	Expenses []*Expense `json:"expenses"`
}
