package csvimport

import (
	"encoding/csv"
	"errors"
	"io"

	"github.com/jinofin/backend/internal/domain/entity"
	domainerror "github.com/jinofin/backend/internal/domain/error"
)

// ExportDateLayout is the combined date-time layout used for exported rows.
// It is one of the strict import layouts, so an exported file round-trips
// through NormalizeRows without loss.
const ExportDateLayout = "2006-01-02 15:04:05"

// exportHeader is the canonical column order for both import and export.
var exportHeader = []string{"type", "amount", "category", "date", "note"}

// ReadRows parses a CSV stream into raw header-keyed rows. The first record
// is the header row; quoting of embedded commas and newlines follows standard
// CSV rules. Column names are kept verbatim so the normalizer can apply its
// case-insensitive lookup.
func ReadRows(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Ragged rows are normalized away, not fatal.

	header, err := reader.Read()
	if err == io.EOF {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeMissingHeaderRow,
			"missing CSV header row",
			domainerror.ErrMissingHeaderRow,
		)
	}
	if err != nil {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeMalformedCSV,
			"malformed CSV file",
			err,
		)
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, domainerror.NewImportError(
					domainerror.ErrCodeMalformedCSV,
					"malformed CSV file",
					err,
				)
			}
			return nil, err
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// WriteCSV writes transactions as CSV with the canonical
// type,amount,category,date,note column order. IDs and creation timestamps
// are deliberately not exported.
func WriteCSV(w io.Writer, transactions []*entity.Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return err
	}
	for _, txn := range transactions {
		record := []string{
			string(txn.Type),
			txn.Amount.String(),
			txn.Category,
			txn.Date.Format(ExportDateLayout),
			txn.Note,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
