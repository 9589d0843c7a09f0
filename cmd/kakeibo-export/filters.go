package main

import (
	"time"

	"github.com/kakeibo-dev/kakeibo-export/pkg/csv"
	"github.com/kakeibo-dev/kakeibo-export/pkg/models"
)

type filters struct {
	startDate string
	endDate   string
	category  string
	minAmount int64
	maxAmount int64
}

func (f *filters) empty() bool {
	return f.startDate == "" && f.endDate == "" && f.category == "" &&
		f.minAmount == 0 && f.maxAmount == 0
}

func (f *filters) toFilterFunc() csv.FilterFunc {
	if f.empty() {
		return nil
	}
	return func(e *models.Expense) bool {
		if f.startDate != "" {
			start, err := time.Parse("2006-01-02", f.startDate)
			if err == nil && e.Date().Before(start) {
				return false
			}
		}
		if f.endDate != "" {
			end, err := time.Parse("2006-01-02", f.endDate)
			if err == nil && e.Date().After(end) {
				return false
			}
		}
		if f.category != "" && e.Category() != f.category {
			return false
		}
		if f.minAmount != 0 && e.Amount() < f.minAmount {
			return false
		}
		if f.maxAmount != 0 && e.Amount() > f.maxAmount {
			return false
		}
		return true
	}
}
