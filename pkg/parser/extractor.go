package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kakeibo-dev/kakeibo-export/pkg/models"
)

// cellAt returns the trimmed cell at idx, or "" when the row is too
// short. Rows narrower than the column map are not an error.
func cellAt(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

// parseAmount reads a cell as yen. Positivity is checked on the parsed
// float before truncation, so 0.5 passes and truncates to 0.
func parseAmount(raw string) (int64, error) {
	s := strings.ReplaceAll(raw, ",", "")
	s = strings.TrimPrefix(s, "¥")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q is not numeric", raw)
	}
	if f <= 0 {
		return 0, fmt.Errorf("amount %v is not positive", f)
	}
	return int64(f), nil
}

// extractRow turns one data row into an Expense, or reports why the
// row is unusable. Validation short-circuits in the order amount, day,
// date; a failure skips only this row.
func (p *Parser) extractRow(cols *ColumnMap, period Period, cells []string) (*models.Expense, error) {
	amount, err := parseAmount(cellAt(cells, cols.Amount))
	if err != nil {
		return nil, err
	}

	dayRaw := cellAt(cells, cols.Day)
	dayFloat, err := strconv.ParseFloat(dayRaw, 64)
	if err != nil {
		return nil, fmt.Errorf("day %q is not numeric", dayRaw)
	}
	day := int(dayFloat)
	if day < 1 || day > 31 {
		return nil, fmt.Errorf("day %d out of range", day)
	}

	date := time.Date(period.Year, time.Month(period.Month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != period.Year || int(date.Month()) != period.Month || date.Day() != day {
		return nil, fmt.Errorf("no such date %04d-%02d-%02d", period.Year, period.Month, day)
	}

	place := cellAt(cells, cols.Place)
	description := cellAt(cells, cols.Description)

	builder := models.NewExpense(place, description).
		WithDate(date).
		WithAmount(amount)

	switch p.mode {
	case ModeKeyword:
		builder.WithCategory(p.rules.Categorize(place + " " + description))
	default:
		category, subcategory := resolveStructured(cols, cells, p.mode.WithSubcategory())
		builder.WithCategory(category).WithSubcategory(subcategory)
	}

	return builder.Build()
}
