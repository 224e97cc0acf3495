// Package excel reads classroom datasets out of spreadsheets, for samples
// too long to type into the input box.
package excel

import (
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"statclass/domain/sample"
	"statclass/internal/errors"
)

// SampleReader extracts one numeric column from an .xlsx workbook
type SampleReader struct {
	column string // header name; empty = first column whose cells parse as numbers
}

// NewSampleReader creates a reader for the given column. An empty column
// name selects the first numeric column found.
func NewSampleReader(column string) *SampleReader {
	return &SampleReader{column: strings.TrimSpace(column)}
}

// Read extracts a Sample from the first sheet of an uploaded workbook
func (r *SampleReader) Read(src io.Reader) (sample.Sample, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer f.Close()
	return r.extract(f)
}

// ReadFile extracts a Sample from an .xlsx file on disk
func (r *SampleReader) ReadFile(path string) (sample.Sample, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open workbook %s", path)
	}
	defer f.Close()
	return r.extract(f)
}

// extract walks the first sheet. The first row is treated as a header when
// its cell in the chosen column does not parse as a number. Blank cells are
// skipped; any other non-numeric cell fails with PARSE_ERROR.
func (r *SampleReader) extract(f *excelize.File) (sample.Sample, error) {
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.InvalidInput("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheet)
	}
	if len(rows) == 0 {
		return nil, errors.EmptySample()
	}

	col, err := r.findColumn(rows)
	if err != nil {
		return nil, err
	}

	values := make(sample.Sample, 0, len(rows))
	for i, row := range rows {
		if col >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[col])
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, errors.ParseError(cell)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, errors.EmptySample()
	}
	return values, nil
}

// findColumn resolves the configured header name to a column index, or
// probes for the first column with numeric cells when no name is set.
func (r *SampleReader) findColumn(rows [][]string) (int, error) {
	if r.column != "" {
		for i, header := range rows[0] {
			if strings.EqualFold(strings.TrimSpace(header), r.column) {
				return i, nil
			}
		}
		return 0, errors.InvalidInput("column " + strconv.Quote(r.column) + " not found in header row")
	}

	for _, row := range rows {
		for i, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if _, err := strconv.ParseFloat(cell, 64); err == nil {
				return i, nil
			}
		}
	}
	return 0, errors.InvalidInput("no numeric column found in workbook")
}
