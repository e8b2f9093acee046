package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"expense-api/config"
	"expense-api/models"
)

// ErrExpenseNotFound is returned when an id does not match any stored expense.
var ErrExpenseNotFound = errors.New("expense not found")

// ExpenseService persists and queries expenses. All SQL is written with ?
// placeholders and rebound for the handle's dialect.
type ExpenseService struct {
	db *config.DB
}

func NewExpenseService(db *config.DB) *ExpenseService {
	return &ExpenseService{db: db}
}

const expenseColumns = "id, title, amount, occurred_at, category, user_id"

// Create inserts the expense and fills in its store-assigned id. Timestamps
// are normalized to UTC so range comparisons behave the same on both
// dialects.
func (s *ExpenseService) Create(ctx context.Context, e *models.Expense) error {
	query := s.db.Rebind(`
		INSERT INTO expenses (title, amount, occurred_at, category, user_id)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`)
	err := s.db.QueryRowContext(ctx, query,
		e.Title, e.Amount, e.OccurredAt.UTC(), e.Category, e.UserID,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense created",
		"id", e.ID,
		"category", e.Category,
		"userId", e.UserID)
	return nil
}

// GetByID fetches one expense. The lookup is by id only; list is the only
// query scoped to the caller.
func (s *ExpenseService) GetByID(ctx context.Context, id int64) (*models.Expense, error) {
	query := s.db.Rebind("SELECT " + expenseColumns + " FROM expenses WHERE id = ?")
	e, err := s.scanExpense(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExpenseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select expense %d: %w", id, err)
	}
	return e, nil
}

// Update overwrites the mutable fields of an existing expense and returns
// the stored record. The id and owner never change.
func (s *ExpenseService) Update(ctx context.Context, id int64, in models.ExpenseInput) (*models.Expense, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := s.db.Rebind(`
		UPDATE expenses
		SET title = ?, amount = ?, occurred_at = ?, category = ?
		WHERE id = ?
	`)
	if _, err := s.db.ExecContext(ctx, query,
		in.Title, in.Amount, in.OccurredAt.UTC(), in.Category, id,
	); err != nil {
		return nil, fmt.Errorf("update expense %d: %w", id, err)
	}

	existing.Title = in.Title
	existing.Amount = in.Amount
	existing.OccurredAt = in.OccurredAt.UTC()
	existing.Category = in.Category

	slog.InfoContext(ctx, "Expense updated", "id", id, "category", existing.Category)
	return existing, nil
}

// Delete removes an expense permanently.
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	query := s.db.Rebind("DELETE FROM expenses WHERE id = ?")
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete expense %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete expense %d: %w", id, err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}

	slog.InfoContext(ctx, "Expense deleted", "id", id)
	return nil
}

// List returns the expenses owned by userID that match the filter, ordered
// by id ascending, plus the total match count before pagination.
func (s *ExpenseService) List(ctx context.Context, userID string, f models.ExpenseFilter) (*models.ExpenseList, error) {
	where := " WHERE user_id = ?"
	args := []any{userID}

	if f.Title != "" {
		where += ` AND lower(title) LIKE ? ESCAPE '\'`
		args = append(args, "%"+escapeLike(strings.ToLower(f.Title))+"%")
	}
	if f.StartDate != nil {
		where += " AND occurred_at >= ?"
		args = append(args, f.StartDate.UTC())
	}
	if f.EndDate != nil {
		where += " AND occurred_at <= ?"
		args = append(args, f.EndDate.UTC())
	}

	var total int64
	countQuery := s.db.Rebind("SELECT COUNT(*) FROM expenses" + where)
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count expenses: %w", err)
	}

	pageSize := f.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	pageIndex := f.PageIndex
	if pageIndex < 0 {
		pageIndex = 0
	}

	query := s.db.Rebind("SELECT " + expenseColumns + " FROM expenses" + where +
		" ORDER BY id LIMIT ? OFFSET ?")
	args = append(args, pageSize, pageIndex*pageSize)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select expenses: %w", err)
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		e, err := s.scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	return &models.ExpenseList{Total: total, Expenses: expenses}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *ExpenseService) scanExpense(row rowScanner) (*models.Expense, error) {
	var e models.Expense
	if err := row.Scan(&e.ID, &e.Title, &e.Amount, &e.OccurredAt, &e.Category, &e.UserID); err != nil {
		return nil, err
	}
	return &e, nil
}

// escapeLike escapes LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
