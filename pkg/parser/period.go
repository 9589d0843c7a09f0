package parser

import (
	"regexp"
	"strconv"
)

// Monthly sheets are named "YY.MM" (e.g. "24.06"). Anything else is an
// aggregate sheet and is not scanned.
var sheetNameRegex = regexp.MustCompile(`^(\d+)\.(\d+)`)

// Period is the year and month a monthly sheet covers. Month is taken
// verbatim from the sheet name; an out-of-range month only surfaces
// when date construction fails for every row.
type Period struct {
	Year  int
	Month int
}

// ParsePeriod extracts the period from a sheet name. The two-digit
// year maps to 2000+YY.
func ParsePeriod(sheetName string) (Period, bool) {
	matches := sheetNameRegex.FindStringSubmatch(sheetName)
	if matches == nil {
		return Period{}, false
	}

	yy, err := strconv.Atoi(matches[1])
	if err != nil {
		return Period{}, false
	}
	month, err := strconv.Atoi(matches[2])
	if err != nil {
		return Period{}, false
	}

	return Period{Year: 2000 + yy, Month: month}, true
}
