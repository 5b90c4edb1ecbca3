// Package report writes the computed reports to CSV files.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"caixadre/internal/cashflow"
	"caixadre/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// Delimiter is the CSV output delimiter, configurable via the config file.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = delim
		return gocsv.NewSafeCSVWriter(w)
	})
}

// WriteDRECSV writes the statement lines to a CSV file.
func WriteDRECSV(values models.DREValues, csvFile string) error {
	return writeCSV(values.Lines(), csvFile, "statement lines")
}

// WriteCashFlowCSV writes the cash-flow rows to a CSV file.
func WriteCashFlowCSV(r cashflow.Report, csvFile string) error {
	return writeCSV(r.Rows, csvFile, "cash-flow rows")
}

func writeCSV[TRow any](rows []TRow, csvFile, what string) error {
	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(rows),
	}).Info("Writing " + what + " to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		log.WithError(err).Error("Failed to write CSV file")
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}
