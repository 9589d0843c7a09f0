package models

import (
	"fmt"
	"time"
)

// Expense is a single normalized ledger entry extracted from a monthly
// sheet. Amounts are integer yen. Records are immutable after Build.
type Expense struct {
	date        time.Time
	category    string
	subcategory string
	amount      int64
	place       string
	description string
}

func (e *Expense) Date() time.Time     { return e.date }
func (e *Expense) DateString() string  { return e.date.Format("2006-01-02") }
func (e *Expense) Category() string    { return e.category }
func (e *Expense) Subcategory() string { return e.subcategory }
func (e *Expense) Amount() int64       { return e.amount }
func (e *Expense) Place() string       { return e.place }
func (e *Expense) Description() string { return e.description }

// Year returns the calendar year of the record.
func (e *Expense) Year() int { return e.date.Year() }

// YearMonth returns the record's period as "YYYY-MM".
func (e *Expense) YearMonth() string { return e.date.Format("2006-01") }

// ExpenseBuilder assembles an Expense step by step so the extractor can
// fail a row at any stage before committing it.
type ExpenseBuilder struct {
	expense Expense
	err     error
}

func NewExpense(place, description string) *ExpenseBuilder {
	return &ExpenseBuilder{expense: Expense{place: place, description: description}}
}

func (b *ExpenseBuilder) WithDate(date time.Time) *ExpenseBuilder {
	b.expense.date = date
	return b
}

// WithAmount sets the amount in yen. Zero is allowed: the extractor
// checks positivity on the raw cell value before truncating, so a cell
// like 0.5 passes the check and stores 0.
func (b *ExpenseBuilder) WithAmount(amount int64) *ExpenseBuilder {
	if amount < 0 {
		b.err = fmt.Errorf("negative amount %d", amount)
		return b
	}
	b.expense.amount = amount
	return b
}

func (b *ExpenseBuilder) WithCategory(category string) *ExpenseBuilder {
	b.expense.category = category
	return b
}

func (b *ExpenseBuilder) WithSubcategory(subcategory string) *ExpenseBuilder {
	b.expense.subcategory = subcategory
	return b
}

func (b *ExpenseBuilder) Build() (*Expense, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.expense.date.IsZero() {
		return nil, fmt.Errorf("expense has no date")
	}
	if b.expense.category == "" {
		return nil, fmt.Errorf("expense has no category")
	}
	e := b.expense
	return &e, nil
}
