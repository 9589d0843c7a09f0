package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"
	"github.com/xuri/excelize/v2"

	"github.com/kakeibo-dev/kakeibo-export/pkg/config"
	"github.com/kakeibo-dev/kakeibo-export/pkg/parser"
	"github.com/kakeibo-dev/kakeibo-export/pkg/service"
)

var (
	cliFilters filters
	cfgFile    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "kakeibo-export",
	Short: "Convert kakeibo workbooks to budgeting-app CSV files",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <workbook.xlsx>",
	Short: "Extract monthly sheets and write one CSV per year (or year-month)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		processor, err := service.NewProcessor(cfg, logger)
		if err != nil {
			return err
		}

		if err := processor.Process(args[0], cliFilters.toFilterFunc()); err != nil {
			logger.Error("processing failed", "error", err)
			return err
		}
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <workbook.xlsx>",
	Short: "Show each monthly sheet's resolved column map without converting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		f, err := excelize.OpenFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to open workbook: %w", err)
		}
		defer f.Close()

		for _, name := range f.GetSheetList() {
			if _, ok := parser.ParsePeriod(name); !ok {
				logger.Debug("not a monthly sheet", "sheet", name)
				continue
			}

			rows, err := f.GetRows(name)
			if err != nil || len(rows) == 0 {
				logger.Warn("sheet unreadable or empty", "sheet", name, "error", err)
				continue
			}

			cols, err := parser.ResolveColumns(rows[0])
			if err != nil {
				logger.Warn("skipping sheet", "sheet", name, "error", err)
				continue
			}

			fmt.Printf("%s (%d data rows)\n", name, len(rows)-1)
			pp.Println(cols)
		}
		return nil
	},
}

func newLogger() *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "kakeibo-export",
		Level:           level,
	})
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Filter flags (global)
	rootCmd.PersistentFlags().StringVar(&cliFilters.startDate, "start", "", "Start date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.endDate, "end", "", "End date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.category, "category", "", "Only export this category")
	rootCmd.PersistentFlags().Int64Var(&cliFilters.minAmount, "min", 0, "Minimum amount (yen)")
	rootCmd.PersistentFlags().Int64Var(&cliFilters.maxAmount, "max", 0, "Maximum amount (yen)")

	// Flags specific to the convert subcommand
	convertCmd.Flags().StringP("output-dir", "o", ".", "Output directory")
	convertCmd.Flags().String("mode", "keyword", "Extraction mode: keyword, category or subcategory")
	convertCmd.Flags().String("group-by", "year", "Export grouping: year or year-month")
	convertCmd.Flags().String("rules", "", "Keyword rules YAML file (defaults compiled in)")
	convertCmd.Flags().Int("max-rows", 1000, "Data rows scanned per sheet")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	_ = gotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
