// Package csv serializes expense records for the budgeting app's
// import screen. Output is UTF-8 with a byte-order mark so spreadsheet
// tools pick up the encoding.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/kakeibo-dev/kakeibo-export/pkg/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FilterFunc decides whether a record is written. nil keeps all.
type FilterFunc func(*models.Expense) bool

// Write emits the header row and one row per record, in the order
// given. The caller is responsible for sorting; writing the same
// sorted input twice yields byte-identical output.
func Write(w io.Writer, expenses []*models.Expense, withSubcategory bool, filter FilterFunc) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)

	header := []string{"日付", "カテゴリ", "金額", "場所", "商品名・メモ"}
	if withSubcategory {
		header = []string{"日付", "カテゴリ", "小項目", "金額", "場所", "商品名・メモ"}
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, e := range expenses {
		if filter != nil && !filter(e) {
			continue
		}
		row := []string{e.DateString(), e.Category()}
		if withSubcategory {
			row = append(row, e.Subcategory())
		}
		row = append(row, strconv.FormatInt(e.Amount(), 10), e.Place(), e.Description())
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
