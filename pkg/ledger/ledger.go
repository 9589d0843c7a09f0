// Package ledger accumulates extracted expense records grouped by
// export unit (year or year-month). The ledger is owned by a single
// run and discarded after export.
package ledger

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/kakeibo-dev/kakeibo-export/pkg/models"
)

// GroupBy selects the export unit.
type GroupBy string

const (
	GroupByYear      GroupBy = "year"
	GroupByYearMonth GroupBy = "year-month"
)

func ParseGroupBy(s string) (GroupBy, error) {
	switch GroupBy(s) {
	case GroupByYear, GroupByYearMonth:
		return GroupBy(s), nil
	default:
		return "", fmt.Errorf("unknown grouping %q (want year or year-month)", s)
	}
}

// Ledger is an append-only accumulator. Records are never mutated or
// removed after Add.
type Ledger struct {
	groupBy GroupBy
	groups  map[string][]*models.Expense
	total   int
}

func New(groupBy GroupBy) *Ledger {
	return &Ledger{
		groupBy: groupBy,
		groups:  map[string][]*models.Expense{},
	}
}

func (l *Ledger) key(e *models.Expense) string {
	if l.groupBy == GroupByYearMonth {
		return e.YearMonth()
	}
	return strconv.Itoa(e.Year())
}

// Add appends a record to its group. Insertion order within a group is
// preserved as the sort tie-break.
func (l *Ledger) Add(e *models.Expense) {
	k := l.key(e)
	l.groups[k] = append(l.groups[k], e)
	l.total++
}

// Len returns the total record count across all groups.
func (l *Ledger) Len() int { return l.total }

// Keys returns the group keys in ascending order.
func (l *Ledger) Keys() []string {
	keys := make([]string, 0, len(l.groups))
	for k := range l.groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Records returns one group sorted by date ascending. The sort is
// stable: same-day records keep their extraction order. Sorting an
// already sorted group is a no-op.
func (l *Ledger) Records(key string) []*models.Expense {
	records := l.groups[key]
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date().Before(records[j].Date())
	})
	return records
}

// Summary is the informational run report. It is derived from the
// ledger and never authoritative over the exported files.
type Summary struct {
	Total      int
	ByCategory map[string]int
	ByGroup    map[string]int
	First      time.Time
	Last       time.Time
}

func (l *Ledger) Summary() Summary {
	s := Summary{
		Total:      l.total,
		ByCategory: map[string]int{},
		ByGroup:    map[string]int{},
	}
	for k, records := range l.groups {
		s.ByGroup[k] = len(records)
		for _, e := range records {
			s.ByCategory[e.Category()]++
			if s.First.IsZero() || e.Date().Before(s.First) {
				s.First = e.Date()
			}
			if e.Date().After(s.Last) {
				s.Last = e.Date()
			}
		}
	}
	return s
}
