package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/kakeibo-dev/kakeibo-export/pkg/config"
	"github.com/kakeibo-dev/kakeibo-export/pkg/csv"
	"github.com/kakeibo-dev/kakeibo-export/pkg/ledger"
	"github.com/kakeibo-dev/kakeibo-export/pkg/models"
	"github.com/kakeibo-dev/kakeibo-export/pkg/parser"
	"github.com/kakeibo-dev/kakeibo-export/pkg/rules"
)

// Processor drives one conversion run: workbook in, one CSV per group
// out, summary printed at the end.
type Processor struct {
	config  *config.Config
	logger  *log.Logger
	parser  *parser.Parser
	mode    parser.Mode
	groupBy ledger.GroupBy
}

func NewProcessor(cfg *config.Config, logger *log.Logger) (*Processor, error) {
	mode, err := parser.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	groupBy, err := ledger.ParseGroupBy(cfg.GroupBy)
	if err != nil {
		return nil, err
	}

	ruleSet := rules.Default()
	if cfg.Rules != "" {
		ruleSet, err = rules.Load(cfg.Rules)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded keyword rules", "path", cfg.Rules, "groups", len(ruleSet.Groups))
	}

	return &Processor{
		config:  cfg,
		logger:  logger,
		parser:  parser.New(logger, mode, ruleSet).WithMaxRows(cfg.MaxRows),
		mode:    mode,
		groupBy: groupBy,
	}, nil
}

// Process converts one workbook. filter may be nil.
func (p *Processor) Process(inputPath string, filter csv.FilterFunc) error {
	led, err := p.parser.ParseWorkbook(inputPath, p.groupBy)
	if err != nil {
		return err
	}

	if led.Len() == 0 {
		p.logger.Warn("no records extracted", "path", inputPath)
		return nil
	}

	if err := os.MkdirAll(p.config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, key := range led.Keys() {
		outPath := filepath.Join(p.config.OutputDir, fmt.Sprintf("imported_data_%s.csv", key))
		if err := p.writeGroup(outPath, led.Records(key), filter); err != nil {
			return err
		}
		p.logger.Info("wrote export", "group", key, "records", len(led.Records(key)), "file", outPath)
	}

	p.printSummary(led.Summary())
	return nil
}

func (p *Processor) writeGroup(outPath string, records []*models.Expense, filter csv.FilterFunc) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := csv.Write(out, records, p.mode.WithSubcategory(), filter); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}

// printSummary reports counts per category and per group plus the date
// range. Informational only; the CSV files are the real output.
func (p *Processor) printSummary(s ledger.Summary) {
	fmt.Printf("合計 %d件\n", s.Total)

	fmt.Println("カテゴリ別件数:")
	categories := make([]string, 0, len(s.ByCategory))
	for c := range s.ByCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		fmt.Printf("  %s: %d件\n", c, s.ByCategory[c])
	}

	fmt.Println("グループ別件数:")
	groups := make([]string, 0, len(s.ByGroup))
	for g := range s.ByGroup {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	for _, g := range groups {
		fmt.Printf("  %s: %d件\n", g, s.ByGroup[g])
	}

	if !s.First.IsZero() {
		fmt.Printf("期間: %s 〜 %s\n", s.First.Format("2006-01-02"), s.Last.Format("2006-01-02"))
	}
}
