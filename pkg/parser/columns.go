package parser

import (
	"fmt"
	"strings"
)

// mainCategories is the closed set of labels the ledger uses for its
// per-category columns. Header cells must match exactly (after
// trimming) to be recognized as a category column.
var mainCategories = []string{
	"食品", "日用品", "外食費", "衣類", "家具・家電", "美容",
	"医療費", "交際費", "レジャー", "ガソリン・ETC", "光熱費",
	"通信費", "保険", "車関連【車検・税金・積立】", "税金", "経費", "ローン",
}

// CategoryColumn is one structured category column found in a header.
type CategoryColumn struct {
	Index int
	Label string
}

// ColumnMap resolves semantic fields to column indices for one sheet.
// A value of -1 never appears in a map returned by ResolveColumns; the
// mandatory fields are either all present or resolution fails.
type ColumnMap struct {
	Day         int
	Place       int
	Amount      int
	Description int

	// Categories preserves header order; the extractor's
	// first-match-wins scan depends on it.
	Categories []CategoryColumn

	// Subcategories maps a main-category label to its 〜内訳 column.
	Subcategories map[string]int
}

// MissingColumnsError reports which mandatory fields a header lacks.
// The sheet is skipped wholesale when this is returned.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("header is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ResolveColumns scans a header row and builds the sheet's column map.
// Cells are matched against the recognition rules in a fixed order and
// the first matching rule claims the cell; unrecognized cells are
// ignored. Only the first 日/day column is kept.
func ResolveColumns(header []string) (*ColumnMap, error) {
	cols := &ColumnMap{
		Day:           -1,
		Place:         -1,
		Amount:        -1,
		Description:   -1,
		Subcategories: map[string]int{},
	}

	for i, cell := range header {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		lower := strings.ToLower(cell)

		switch {
		case cell == "日" || strings.Contains(lower, "day"):
			if cols.Day < 0 {
				cols.Day = i
			}
		case strings.Contains(cell, "場所") || strings.Contains(lower, "place"):
			cols.Place = i
		case strings.Contains(cell, "価格") || strings.Contains(cell, "金額") || strings.Contains(lower, "price"):
			cols.Amount = i
		case strings.Contains(cell, "商品") || strings.Contains(lower, "item"):
			cols.Description = i
		case isMainCategory(cell):
			cols.Categories = append(cols.Categories, CategoryColumn{Index: i, Label: cell})
		case strings.Contains(cell, "内訳"):
			main := strings.ReplaceAll(cell, "内訳", "")
			cols.Subcategories[main] = i
		}
	}

	var missing []string
	if cols.Day < 0 {
		missing = append(missing, "day")
	}
	if cols.Place < 0 {
		missing = append(missing, "place")
	}
	if cols.Amount < 0 {
		missing = append(missing, "amount")
	}
	if cols.Description < 0 {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	return cols, nil
}

func isMainCategory(cell string) bool {
	for _, c := range mainCategories {
		if cell == c {
			return true
		}
	}
	return false
}
