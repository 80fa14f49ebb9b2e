// Package main provides the CLI entry point for exdraw.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exdraw-go/pkg/exdraw"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/models"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	outputPath string
	pretty     bool
	mode       string
	sheetsDir  string
	format     string
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "exdraw [input.xlsx]",
		Short: "Report the drawings of Excel files",
		Long: `exdraw reports the shapes, connectors, pictures, charts and cell notes
of Excel files as JSON or YAML.`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&mode, "mode", "standard", "Inspection mode: light, standard, verbose")
	rootCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	rootCmd.Flags().StringVar(&format, "format", "json", "Output format: json, yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(sampleCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %s", logLevel)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	inspectMode, ok := exdraw.ParseMode(mode)
	if !ok {
		return fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", mode)
	}
	outFormat, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	opts := exdraw.Options{
		Mode:   inspectMode,
		Logger: logger,
	}

	wb, err := exdraw.Inspect(inputPath, opts)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	data, err := output.Encode(outFormat, wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}

	// Write per-sheet files
	if sheetsDir != "" {
		if err := writeSheetFiles(wb, sheetsDir, outFormat); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

func writeSheetFiles(wb *models.WorkbookData, dir string, f output.Format) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	books, err := output.SplitSheets(wb)
	if err != nil {
		return err
	}
	for sheetName, book := range books {
		data, err := output.Encode(f, book, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheetName+"."+f.Ext())
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return err
		}
	}

	return nil
}
