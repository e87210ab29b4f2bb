// Package main provides the CLI entry point for flatsheet-go.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/flatsheet-go/pkg/flatsheet/builder"
	"github.com/ukaji3/flatsheet-go/pkg/flatsheet/output"
	"github.com/ukaji3/flatsheet-go/pkg/flatsheet/sheet"
)

var (
	outputPath      string
	pretty          bool
	delimiter       string
	trim            bool
	flexible        bool
	primary         int
	labelMode       string
	headerLabels    []string
	typeNames       []string
	inferTypes      bool
	nullString      string
	workSheet       string
	sortBy          int
	sortDesc        bool
	transpose       bool
	transposeHeader string
	configPath      string
	logLevel        string
)

var logLevelMap = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "flatsheet [input]",
		Short: "Parse delimited text, spreadsheet, or JSON files into typed sheets",
		Long: `flatsheet parses CSV/TSV, xlsx, and JSON files into a validated sheet
with per-column type tracking, and outputs the sheet as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&delimiter, "delimiter", ",", "Field delimiter for delimited text input")
	rootCmd.Flags().BoolVar(&trim, "trim", false, "Trim whitespace from fields and header labels")
	rootCmd.Flags().BoolVar(&flexible, "flexible", false, "Pad short rows instead of failing on ragged input")
	rootCmd.Flags().IntVar(&primary, "primary", 0, "Primary column index")
	rootCmd.Flags().StringVar(&labelMode, "labels", "none", "Header label mode: none, read")
	rootCmd.Flags().StringArrayVar(&headerLabels, "header", nil, "Provided header label (repeatable, overrides --labels)")
	rootCmd.Flags().StringSliceVar(&typeNames, "types", nil, "Provided column types (comma-separated: none, boolean, integer, float, number, text)")
	rootCmd.Flags().BoolVar(&inferTypes, "infer", false, "Infer column types from the data")
	rootCmd.Flags().StringVar(&nullString, "null", builder.DefaultNullString, "Field value decoded as an empty cell")
	rootCmd.Flags().StringVar(&workSheet, "xlsx-sheet", "", "Worksheet name for xlsx input (default: active sheet)")
	rootCmd.Flags().IntVar(&sortBy, "sort-by", -1, "Sort rows by the given column index")
	rootCmd.Flags().BoolVar(&sortDesc, "desc", false, "Sort descending instead of ascending")
	rootCmd.Flags().BoolVar(&transpose, "transpose", false, "Transpose the sheet before output")
	rootCmd.Flags().StringVar(&transposeHeader, "transpose-header", "", "Label for the top-left header after transposing")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file with parsing options (flags take precedence)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// fileConfig mirrors the parsing flags for YAML files given with --config.
type fileConfig struct {
	Delimiter *string  `yaml:"delimiter"`
	Trim      *bool    `yaml:"trim"`
	Flexible  *bool    `yaml:"flexible"`
	Primary   *int     `yaml:"primary"`
	Labels    *string  `yaml:"labels"`
	Header    []string `yaml:"header"`
	Types     []string `yaml:"types"`
	Infer     *bool    `yaml:"infer"`
	Null      *string  `yaml:"null"`
	Sheet     *string  `yaml:"sheet"`
}

func run(cmd *cobra.Command, args []string) error {
	initLogging(logLevel)

	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	if configPath != "" {
		if err := applyConfigFile(cmd, configPath); err != nil {
			return err
		}
	}

	labels, err := labelStrategy()
	if err != nil {
		return err
	}
	types, err := typeStrategy()
	if err != nil {
		return err
	}

	b, err := makeBuilder(cmd, inputPath, labels, types)
	if err != nil {
		return err
	}

	sh, err := b.Build()
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	slog.Info("sheet built", "rows", sh.RowCount(), "columns", len(sh.Headers()))

	if sortBy >= 0 {
		if sortDesc {
			err = sh.SortByColumnDesc(sortBy)
		} else {
			err = sh.SortByColumn(sortBy)
		}
		if err != nil {
			return fmt.Errorf("sort failed: %w", err)
		}
	}

	if transpose {
		sh, err = sh.Transpose(transposeHeader)
		if err != nil {
			return fmt.Errorf("transpose failed: %w", err)
		}
	}

	jsonData, err := output.ToJSON(sh, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

// initLogging installs a text slog handler at the requested level.
func initLogging(level string) {
	lvl, ok := logLevelMap[strings.ToLower(level)]
	if !ok {
		lvl = slog.LevelWarn
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

// applyConfigFile loads a YAML options file. Explicitly set flags take
// precedence over file values.
func applyConfigFile(cmd *cobra.Command, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	flags := cmd.Flags()
	if fc.Delimiter != nil && !flags.Changed("delimiter") {
		delimiter = *fc.Delimiter
	}
	if fc.Trim != nil && !flags.Changed("trim") {
		trim = *fc.Trim
	}
	if fc.Flexible != nil && !flags.Changed("flexible") {
		flexible = *fc.Flexible
	}
	if fc.Primary != nil && !flags.Changed("primary") {
		primary = *fc.Primary
	}
	if fc.Labels != nil && !flags.Changed("labels") {
		labelMode = *fc.Labels
	}
	if fc.Header != nil && !flags.Changed("header") {
		headerLabels = fc.Header
	}
	if fc.Types != nil && !flags.Changed("types") {
		typeNames = fc.Types
	}
	if fc.Infer != nil && !flags.Changed("infer") {
		inferTypes = *fc.Infer
	}
	if fc.Null != nil && !flags.Changed("null") {
		nullString = *fc.Null
	}
	if fc.Sheet != nil && !flags.Changed("xlsx-sheet") {
		workSheet = *fc.Sheet
	}
	return nil
}

func labelStrategy() (sheet.HeaderLabelStrategy, error) {
	if len(headerLabels) > 0 {
		return sheet.ProvidedLabels(headerLabels...), nil
	}
	switch labelMode {
	case "none":
		return sheet.NoLabels(), nil
	case "read":
		return sheet.ReadLabels(), nil
	}
	return sheet.NoLabels(), fmt.Errorf("invalid label mode: %s (must be none or read)", labelMode)
}

func typeStrategy() (sheet.TypesStrategy, error) {
	if len(typeNames) > 0 {
		types := make([]sheet.ColumnType, len(typeNames))
		for i, name := range typeNames {
			t, err := sheet.ParseColumnType(strings.TrimSpace(name))
			if err != nil {
				return sheet.TypesNone(), err
			}
			types[i] = t
		}
		return sheet.ProvidedTypes(types...), nil
	}
	if inferTypes {
		return sheet.InferTypes(), nil
	}
	return sheet.TypesNone(), nil
}

// makeBuilder dispatches on the input extension: .xlsx and .xlsm decode as
// workbooks, .json as a JSON document, everything else as delimited text
// (.tsv switches the default delimiter to a tab).
func makeBuilder(cmd *cobra.Command, path string, labels sheet.HeaderLabelStrategy, types sheet.TypesStrategy) (builder.Builder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return builder.NewXLSXConfig(path).
			Sheet(workSheet).
			Primary(primary).
			Trim(trim).
			Flexible(flexible).
			Labels(labels).
			Types(types).
			NullString(nullString), nil
	case ".json":
		return builder.NewJSONConfig(path).
			Primary(primary).
			Flexible(flexible).
			Labels(labels).
			Types(types), nil
	case ".tsv":
		if !cmd.Flags().Changed("delimiter") {
			delimiter = "\t"
		}
	}
	if len(delimiter) != 1 {
		return nil, fmt.Errorf("invalid delimiter: %q (must be one character)", delimiter)
	}
	return builder.NewConfig(path).
		Primary(primary).
		Trim(trim).
		Flexible(flexible).
		Labels(labels).
		Types(types).
		Delimiter(delimiter[0]).
		NullString(nullString), nil
}
