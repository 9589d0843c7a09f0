package parser

import "strings"

// defaultStructuredCategory is used when no category column holds a
// value. Distinct from the keyword classifier's 食費 default on
// purpose; the two modes are not interchangeable.
const defaultStructuredCategory = "その他"

// resolveStructured picks the record's category from the sheet's
// category columns: the first column (in header order) with a
// non-blank cell wins and the scan stops. When withDetail is set, the
// 小項目 string is also derived, preferring the matching 〜内訳 column
// over the category cell's own text.
func resolveStructured(cols *ColumnMap, cells []string, withDetail bool) (category, subcategory string) {
	category = defaultStructuredCategory

	var catValue string
	for _, cat := range cols.Categories {
		v := cellAt(cells, cat.Index)
		if v != "" {
			category = cat.Label
			catValue = v
			break
		}
	}

	if !withDetail {
		return category, ""
	}

	// The category cell often holds the detail text itself (e.g. a
	// shop name); a bare number there is just the amount echoed.
	if catValue != "" && !isNumericText(catValue) {
		subcategory = catValue
	}

	if category != defaultStructuredCategory {
		if idx, ok := cols.Subcategories[category]; ok {
			if v := cellAt(cells, idx); v != "" && !isNumericText(v) {
				subcategory = v
			}
		}
	}

	return category, subcategory
}

// isNumericText reports whether s is digits once separators and
// date/time punctuation are stripped.
func isNumericText(s string) bool {
	stripped := strings.NewReplacer(".", "", "-", "", ":", "", " ", "").Replace(s)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
