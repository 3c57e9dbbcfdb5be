package report

import (
	"encoding/csv"
	"io"

	"github.com/rios0rios0/licensegen/domain"
)

// reportHeader is the fixed column set of the consolidated report.
var reportHeader = []string{"Component", "Origin", "License", "Copyright"}

// CSVWriter renders the report as UTF-8 CSV with the fixed header row.
// Values containing commas, quotes, or newlines are quoted by encoding/csv.
type CSVWriter struct{}

// NewCSVWriter creates the CSV report writer.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

var _ Writer = (*CSVWriter)(nil)

func (w *CSVWriter) Name() string { return "csv" }

func (w *CSVWriter) Write(out io.Writer, records []domain.Record) error {
	cw := csv.NewWriter(out)

	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, record := range records {
		row := []string{record.Component, record.Origin, record.License, record.Copyright}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
