package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ynab-tools/stmtparse/internal/domain"
	"github.com/ynab-tools/stmtparse/internal/export"
	"github.com/ynab-tools/stmtparse/internal/mapper"
	"github.com/ynab-tools/stmtparse/internal/scanner"
	"github.com/ynab-tools/stmtparse/internal/ui"
)

const version = "0.1.0"

var (
	versionFlag = flag.Bool("version", false, "Show version")

	inputPath  = flag.String("input", "", "Statement file or directory (required)")
	outputFile = flag.String("output", "", "Output CSV file (default: stdout)")
	previewN   = flag.Int("preview", 0, "Print an N-row preview instead of full output")
	noHeader   = flag.Bool("no-header", false, "Omit the CSV header row")
	verbose    = flag.Bool("verbose", false, "Show per-row mapping diagnostics")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `stmtparse - bank statement to YNAB CSV converter

Usage:
  stmtparse [flags]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprint(os.Stderr, `
Examples:
  # Convert one statement to stdout
  stmtparse -input axis-statement.csv

  # Convert a directory of statements to a file
  stmtparse -input ~/statements -output ynab.csv

  # Inspect how rows were mapped
  stmtparse -input icici-cc.csv -preview 10 -verbose

`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("stmtparse version %s\n", version)
		os.Exit(0)
	}

	if *inputPath == "" {
		fmt.Fprintf(os.Stderr, "Error: -input flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !*verbose {
		ui.Header("Converting Bank Statements")
		ui.Step(1, 3, "Scanning for statement files")
	}

	files, err := scanner.New(*inputPath).Scan()
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", *inputPath, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no statement files found in %s (looking for .csv, .txt, .tsv)", *inputPath)
	}
	if !*verbose {
		ui.Success(fmt.Sprintf("Found %d statement file(s)", len(files)))
		ui.Step(2, 3, "Parsing and mapping transactions")
	}

	m, err := mapper.New()
	if err != nil {
		return fmt.Errorf("failed to create mapper: %w", err)
	}

	var all []*domain.Transaction
	failed := 0
	for _, path := range files {
		txns, err := convertFile(m, path)
		if err != nil {
			// A file the engine cannot place is reported and skipped; the
			// remaining files still convert.
			ui.Warning(fmt.Sprintf("%s: %v", path, err))
			failed++
			continue
		}
		if !*verbose {
			ui.Success(fmt.Sprintf("%s: %d transactions", path, len(txns)))
		}
		all = append(all, txns...)
	}

	if len(all) == 0 {
		return fmt.Errorf("no transactions extracted from %d file(s)", len(files))
	}
	if failed > 0 {
		ui.Warning(fmt.Sprintf("%d file(s) could not be parsed", failed))
	}

	if problems := domain.ValidateTransactions(all); len(problems) > 0 {
		for _, p := range problems {
			ui.Error(fmt.Sprintf("transaction %d [%s]: %s", p.Index, p.Field, p.Message))
		}
		return fmt.Errorf("validation failed with %d problem(s)", len(problems))
	}

	if !*verbose {
		ui.Step(3, 3, "Writing output")
	}

	opts := export.Options{IncludeHeader: !*noHeader, SanitizeData: true}

	if *previewN > 0 {
		for _, line := range export.Preview(all, opts, *previewN) {
			ui.Plain("%s", line)
		}
		return nil
	}

	if *outputFile == "" {
		return export.WriteCSV(os.Stdout, all, opts)
	}

	f, err := os.Create(*outputFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", *outputFile, err)
	}
	if err := export.WriteCSV(f, all, opts); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", *outputFile, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", *outputFile, err)
	}
	if !*verbose {
		ui.Success(fmt.Sprintf("Wrote %d transactions to %s", len(all), *outputFile))
	}
	return nil
}

// convertFile parses and maps one statement file.
func convertFile(m *mapper.Mapper, path string) ([]*domain.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read: %w", err)
	}

	rec := mapper.NewRecorder()
	// Detection keys off the file name, not the directory it lives in.
	table, err := mapper.ParseText(string(data), filepath.Base(path), rec)
	if err != nil {
		reportEvents(rec)
		return nil, err
	}

	result := m.MapToTransactions(table, rec)
	reportEvents(rec)

	if result.MappingUsed != result.Detected {
		ui.Warning(fmt.Sprintf("%s: detected %s but mapped with %s",
			path, result.Detected, result.MappingUsed))
	}
	return result.Transactions, nil
}

// reportEvents prints the diagnostic trail in verbose mode.
func reportEvents(rec *mapper.Recorder) {
	if !*verbose {
		return
	}
	for _, ev := range rec.Events() {
		fmt.Fprintf(os.Stderr, "  [%s] %s\n", ev.Stage, ev.Message)
	}
}
