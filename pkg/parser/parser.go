// Package parser locates and extracts expense records from a kakeibo
// workbook. Column layout is not fixed: each monthly sheet's header
// row is resolved into a column map before its data rows are scanned.
package parser

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/xuri/excelize/v2"

	"github.com/kakeibo-dev/kakeibo-export/pkg/ledger"
	"github.com/kakeibo-dev/kakeibo-export/pkg/rules"
)

// defaultMaxRows caps how many data rows are scanned per sheet.
const defaultMaxRows = 1000

type Parser struct {
	logger  *log.Logger
	mode    Mode
	rules   *rules.Set
	maxRows int
}

func New(logger *log.Logger, mode Mode, ruleSet *rules.Set) *Parser {
	if ruleSet == nil {
		ruleSet = rules.Default()
	}
	return &Parser{
		logger:  logger,
		mode:    mode,
		rules:   ruleSet,
		maxRows: defaultMaxRows,
	}
}

// WithMaxRows overrides the per-sheet row cap.
func (p *Parser) WithMaxRows(n int) *Parser {
	if n > 0 {
		p.maxRows = n
	}
	return p
}

// ParseWorkbook reads every monthly sheet of the workbook at path into
// a fresh ledger. Sheets without the mandatory columns are skipped
// with a warning; bad rows are skipped silently. Only failing to open
// the workbook is fatal.
func (p *Parser) ParseWorkbook(path string, groupBy ledger.GroupBy) (*ledger.Ledger, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	led := ledger.New(groupBy)

	monthly := 0
	for _, name := range f.GetSheetList() {
		period, ok := ParsePeriod(name)
		if !ok {
			p.logger.Debug("skipping non-monthly sheet", "sheet", name)
			continue
		}
		monthly++
		p.parseSheet(f, name, period, led)
	}

	if monthly == 0 {
		p.logger.Warn("workbook has no monthly sheets", "path", path)
	}

	return led, nil
}

func (p *Parser) parseSheet(f *excelize.File, name string, period Period, led *ledger.Ledger) {
	rows, err := f.GetRows(name)
	if err != nil {
		p.logger.Warn("failed to read sheet", "sheet", name, "error", err)
		return
	}
	if len(rows) == 0 {
		p.logger.Warn("sheet is empty", "sheet", name)
		return
	}

	cols, err := ResolveColumns(rows[0])
	if err != nil {
		var missing *MissingColumnsError
		if errors.As(err, &missing) {
			p.logger.Warn("skipping sheet", "sheet", name, "error", err)
			return
		}
		p.logger.Warn("failed to resolve columns", "sheet", name, "error", err)
		return
	}

	p.logger.Debug("resolved columns",
		"sheet", name,
		"day", cols.Day,
		"place", cols.Place,
		"amount", cols.Amount,
		"description", cols.Description,
		"categories", len(cols.Categories))

	count := 0
	for i := 1; i < len(rows) && i <= p.maxRows; i++ {
		expense, err := p.extractRow(cols, period, rows[i])
		if err != nil {
			p.logger.Debug("skipping row", "sheet", name, "row", i+1, "error", err)
			continue
		}
		led.Add(expense)
		count++
	}

	p.logger.Info("processed sheet", "sheet", name, "records", count)
}
