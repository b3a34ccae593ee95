// Package main provides the CLI entry point for sheetpress.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress"
	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/compressor"
	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/models"
	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/output"
	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/report"
	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/xlsx"
)

var (
	outputPath string
	sheetsDir  string
	format     string
	pretty     bool
	configPath string
	anchorK    int
	boundary   int
	similarity float64
	emptyMode  string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetpress [input.xlsx]",
		Short: "Compress spreadsheets into compact encodings for LLM contexts",
		Long: `sheetpress compresses every sheet of a workbook into a compact
encoding: an anchor-pruned layout, an inverted value index and
data-format aggregated regions.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	rootCmd.Flags().StringVar(&format, "format", "text", "Output format: text, json")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file with compression options")
	rootCmd.Flags().IntVar(&anchorK, "anchor-k", 1, "Rows/columns kept at each edge of an elided run")
	rootCmd.Flags().IntVar(&boundary, "boundary-distance", 0, "Anchor distance from empty/non-empty transitions")
	rootCmd.Flags().Float64Var(&similarity, "similarity", 0.8, "Row/column signature similarity threshold")
	rootCmd.Flags().StringVar(&emptyMode, "empty", "skip", "Empty-cell policy: skip, index")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)
	defer logger.Sync()

	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (must be text or json)", format)
	}

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	f, err := excelize.OpenFile(inputPath)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var combined bytes.Buffer
	var reports []report.SheetReport
	for _, sheetName := range f.GetSheetList() {
		grid, err := xlsx.SheetGrid(f, sheetName)
		if err != nil {
			return fmt.Errorf("read sheet %q: %w", sheetName, err)
		}

		o := opts
		o.Sheet = sheetName
		enc, err := sheetpress.Compress(grid, o)
		if err != nil {
			return fmt.Errorf("compress sheet %q: %w", sheetName, err)
		}
		if enc.Empty() {
			logger.Warn("sheet has no content, encoding is empty",
				zap.String("sheet", sheetName))
		}

		rep := report.ForEncoding(grid, enc)
		reports = append(reports, rep)
		logger.Info("compressed sheet",
			zap.String("sheet", sheetName),
			zap.Int("rows", grid.Rows()),
			zap.Int("cols", grid.Cols()),
			zap.Int("non_empty", rep.NonEmpty),
			zap.Int("index_entries", rep.IndexEntries),
			zap.Int("regions", rep.Regions),
			zap.Float64("ratio", rep.Ratio))

		data, err := render(enc)
		if err != nil {
			return fmt.Errorf("serialize sheet %q: %w", sheetName, err)
		}
		if sheetsDir != "" {
			if err := writeSheetFile(sheetName, data); err != nil {
				return err
			}
			continue
		}
		combined.Write(data)
		combined.WriteString("\n")
	}

	if summary, err := report.Summarize(reports); err == nil {
		logger.Info("workbook summary",
			zap.Int("sheets", summary.Sheets),
			zap.Float64("mean_ratio", summary.MeanRatio),
			zap.Float64("median_ratio", summary.MedianRatio),
			zap.Float64("min_ratio", summary.MinRatio),
			zap.Float64("max_ratio", summary.MaxRatio))
	}

	if sheetsDir != "" {
		return nil
	}
	if outputPath != "" {
		if err := os.WriteFile(outputPath, combined.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Print(combined.String())
	return nil
}

// buildOptions layers CLI flags over the optional YAML config file. Only
// flags the user actually set override the file.
func buildOptions(cmd *cobra.Command) (sheetpress.Options, error) {
	opts := sheetpress.DefaultOptions()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return opts, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("parse config: %w", err)
		}
	}
	if cmd.Flags().Changed("anchor-k") {
		opts.AnchorK = &anchorK
	}
	if cmd.Flags().Changed("boundary-distance") {
		opts.BoundaryDistance = &boundary
	}
	if cmd.Flags().Changed("similarity") {
		opts.SimilarityThreshold = &similarity
	}
	if cmd.Flags().Changed("empty") {
		opts.Empty = compressor.EmptyPolicy(emptyMode)
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func render(enc *models.Encoding) ([]byte, error) {
	if format == "json" {
		return output.ToJSON(enc, pretty)
	}
	return output.Encode(enc), nil
}

func writeSheetFile(sheetName string, data []byte) error {
	if err := os.MkdirAll(sheetsDir, 0755); err != nil {
		return err
	}
	ext := ".txt"
	if format == "json" {
		ext = ".json"
	}
	filename := filepath.Join(sheetsDir, sheetName+ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write sheet file: %w", err)
	}
	return nil
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
