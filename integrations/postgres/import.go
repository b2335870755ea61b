package postgres

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lachdavey/ledgerdoc/parser"
	"github.com/lachdavey/ledgerdoc/pdftext"
)

// ImportResult tracks the outcome of an import operation
type ImportResult struct {
	Processed int
	Skipped   int
	Failed    int
	Errors    []string
}

// ImportOptions configures the import behavior
type ImportOptions struct {
	Force   bool // Reprocess documents that already exist
	Verbose bool // Enable verbose logging
}

// ImportFile extracts, parses and stores a single PDF. Classification
// failures (unrecognized format, empty result) count as failed files, not
// hard errors, so a directory import keeps going.
func (db *DB) ImportFile(ctx context.Context, reg *parser.Registry, filePath string, opts ImportOptions) (processed, skipped, failed int, errs []string) {
	fileName := filepath.Base(filePath)
	source := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	text, err := pdftext.Extract(filePath)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s: text extraction failed: %v", fileName, err)}
	}

	result, err := parser.ParseDocument(reg, text)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s: %v", fileName, err)}
	}

	switch result.Kind {
	case parser.KindStatement:
		stmt := *result.Statement

		exists, existingID, err := db.StatementExists(ctx, stmt.BankName, stmt.Year, stmt.Month)
		if err != nil {
			return 0, 0, 1, []string{fmt.Sprintf("%s: check error: %v", fileName, err)}
		}
		if exists {
			if !opts.Force {
				if opts.Verbose {
					log.Printf("Skipping %s: statement already imported", fileName)
				}
				return 0, 1, 0, nil
			}
			if err := db.DeleteStatement(ctx, existingID); err != nil {
				return 0, 0, 1, []string{fmt.Sprintf("%s: delete error: %v", fileName, err)}
			}
		}

		statementID, err := db.CreateStatement(ctx, source, stmt)
		if err != nil {
			return 0, 0, 1, []string{fmt.Sprintf("%s: statement error: %v", fileName, err)}
		}
		if err := db.CreateTransactions(ctx, statementID, stmt.Transactions); err != nil {
			return 0, 0, 1, []string{fmt.Sprintf("%s: transactions error: %v", fileName, err)}
		}
		return 1, 0, 0, nil

	case parser.KindPayslip:
		data := *result.Payslip

		exists, existingID, err := db.PayslipExists(ctx, data.Employer, data.PaymentDate)
		if err != nil {
			return 0, 0, 1, []string{fmt.Sprintf("%s: check error: %v", fileName, err)}
		}
		if exists {
			if !opts.Force {
				if opts.Verbose {
					log.Printf("Skipping %s: payslip already imported", fileName)
				}
				return 0, 1, 0, nil
			}
			if err := db.DeletePayslip(ctx, existingID); err != nil {
				return 0, 0, 1, []string{fmt.Sprintf("%s: delete error: %v", fileName, err)}
			}
		}

		if _, err := db.CreatePayslip(ctx, source, data); err != nil {
			return 0, 0, 1, []string{fmt.Sprintf("%s: payslip error: %v", fileName, err)}
		}
		return 1, 0, 0, nil
	}

	return 0, 0, 1, []string{fmt.Sprintf("%s: unknown result kind %q", fileName, result.Kind)}
}

// Import processes a single PDF or every PDF in a directory.
func (db *DB) Import(ctx context.Context, reg *parser.Registry, path string, opts ImportOptions) (*ImportResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	result := &ImportResult{}
	add := func(processed, skipped, failed int, errs []string) {
		result.Processed += processed
		result.Skipped += skipped
		result.Failed += failed
		result.Errors = append(result.Errors, errs...)
	}

	if !info.IsDir() {
		add(db.ImportFile(ctx, reg, path, opts))
		return result, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		add(db.ImportFile(ctx, reg, filepath.Join(path, e.Name()), opts))
	}

	return result, nil
}
