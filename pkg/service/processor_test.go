package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kakeibo-dev/kakeibo-export/pkg/config"
	"github.com/kakeibo-dev/kakeibo-export/pkg/csv"
	"github.com/kakeibo-dev/kakeibo-export/pkg/models"
)

func writeFixture(t *testing.T, dir string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "24.06"))
	rows := [][]interface{}{
		{"日", "場所", "価格", "商品"},
		{15, "SuperMart", 1200, "groceries"},
		{3, "東京ガス", 4500, ""},
	}
	for r, row := range rows {
		require.NoError(t, f.SetSheetRow("24.06", fmt.Sprintf("A%d", r+1), &row))
	}

	_, err := f.NewSheet("23.11")
	require.NoError(t, err)
	rows = [][]interface{}{
		{"日", "場所", "価格", "商品"},
		{8, "薬局", 980, "かぜ薬"},
	}
	for r, row := range rows {
		require.NoError(t, f.SetSheetRow("23.11", fmt.Sprintf("A%d", r+1), &row))
	}

	path := filepath.Join(dir, "kakeibo.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func newTestProcessor(t *testing.T, cfg *config.Config) *Processor {
	t.Helper()
	p, err := NewProcessor(cfg, log.New(io.Discard))
	require.NoError(t, err)
	return p
}

func TestProcess(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir)
	outDir := filepath.Join(dir, "out")

	cfg := &config.Config{OutputDir: outDir, Mode: "keyword", GroupBy: "year", MaxRows: 1000}
	p := newTestProcessor(t, cfg)

	require.NoError(t, p.Process(input, nil))

	for year, want := range map[string][]string{
		"2024": {
			"日付,カテゴリ,金額,場所,商品名・メモ",
			"2024-06-03,光熱費,4500,東京ガス,",
			"2024-06-15,食費,1200,SuperMart,groceries",
		},
		"2023": {
			"日付,カテゴリ,金額,場所,商品名・メモ",
			"2023-11-08,医療費,980,薬局,かぜ薬",
		},
	} {
		data, err := os.ReadFile(filepath.Join(outDir, "imported_data_"+year+".csv"))
		require.NoError(t, err)
		assert.True(t, len(data) > 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF)

		got := string(data[3:])
		for _, line := range want {
			assert.Contains(t, got, line)
		}
	}
}

func TestProcessYearMonthGrouping(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir)
	outDir := filepath.Join(dir, "out")

	cfg := &config.Config{OutputDir: outDir, Mode: "keyword", GroupBy: "year-month", MaxRows: 1000}
	p := newTestProcessor(t, cfg)

	require.NoError(t, p.Process(input, nil))

	_, err := os.Stat(filepath.Join(outDir, "imported_data_2024-06.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "imported_data_2023-11.csv"))
	assert.NoError(t, err)
}

func TestProcessWithFilter(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir)
	outDir := filepath.Join(dir, "out")

	cfg := &config.Config{OutputDir: outDir, Mode: "keyword", GroupBy: "year", MaxRows: 1000}
	p := newTestProcessor(t, cfg)

	onlyFood := func(e *models.Expense) bool { return e.Category() == "食費" }
	require.NoError(t, p.Process(input, csv.FilterFunc(onlyFood)))

	data, err := os.ReadFile(filepath.Join(outDir, "imported_data_2024.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "SuperMart")
	assert.NotContains(t, string(data), "東京ガス")
}

func TestProcessNoRecords(t *testing.T) {
	dir := t.TempDir()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "集計"))
	input := filepath.Join(dir, "empty.xlsx")
	require.NoError(t, f.SaveAs(input))
	require.NoError(t, f.Close())

	outDir := filepath.Join(dir, "out")
	cfg := &config.Config{OutputDir: outDir, Mode: "keyword", GroupBy: "year", MaxRows: 1000}
	p := newTestProcessor(t, cfg)

	require.NoError(t, p.Process(input, nil))

	// Nothing extracted, nothing written.
	_, err := os.Stat(outDir)
	assert.True(t, os.IsNotExist(err))
}

func TestNewProcessorRejectsBadConfig(t *testing.T) {
	_, err := NewProcessor(&config.Config{Mode: "bogus", GroupBy: "year"}, log.New(io.Discard))
	assert.Error(t, err)

	_, err = NewProcessor(&config.Config{Mode: "keyword", GroupBy: "bogus"}, log.New(io.Discard))
	assert.Error(t, err)

	_, err = NewProcessor(&config.Config{Mode: "keyword", GroupBy: "year", Rules: "/no/such/rules.yaml"}, log.New(io.Discard))
	assert.Error(t, err)
}
