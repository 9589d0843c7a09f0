package parser

import "fmt"

// Mode selects how records are classified. It is fixed for a whole
// run; the keyword and structured strategies are never mixed.
type Mode string

const (
	// ModeKeyword classifies from place/description keywords and
	// defaults to 食費.
	ModeKeyword Mode = "keyword"
	// ModeCategory reads the structured category columns and defaults
	// to その他.
	ModeCategory Mode = "category"
	// ModeSubcategory is ModeCategory plus the 小項目 detail taken
	// from the 〜内訳 columns.
	ModeSubcategory Mode = "subcategory"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeKeyword, ModeCategory, ModeSubcategory:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown extraction mode %q (want keyword, category or subcategory)", s)
	}
}

// WithSubcategory reports whether exports in this mode carry the
// 小項目 column.
func (m Mode) WithSubcategory() bool {
	return m == ModeSubcategory
}
