package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pwga/pwga-league/internal/league"
)

// Format is the representation a sheet is published in
type Format string

const (
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
)

// ParseFormat validates a format name. An empty name selects FormatCSV.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatHTML:
		return f, nil
	case "":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("invalid source format: %s (must be 'csv' or 'html')", s)
	}
}

// Parse reads rows in the given format.
func Parse(r io.Reader, format Format) ([]league.Row, error) {
	switch format {
	case FormatCSV:
		return ParseCSV(r)
	case FormatHTML:
		return ParseHTML(r)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// ParseCSV reads a CSV export. Quoting is parsed leniently and rows may have
// fewer or more cells than the header.
func ParseCSV(r io.Reader) ([]league.Row, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}

	return rowsFromRecords(records), nil
}

// ParseHTML reads the first table of a published sheet page.
//
// The row-number and column-letter cells Google adds around the grid are
// ignored.
func ParseHTML(r io.Reader) ([]league.Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("parsing HTML: no table found")
	}

	records := make([][]string, 0)
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		cells := tr.Children().Filter("td, th").
			Not(".row-headers-background, .column-headers-background, .row-header, .freezebar-cell")
		if cells.Length() == 0 {
			return
		}

		record := make([]string, 0, cells.Length())
		cells.Each(func(j int, cell *goquery.Selection) {
			record = append(record, cell.Text())
		})
		records = append(records, record)
	})

	return rowsFromRecords(records), nil
}

// rowsFromRecords keys records by the first non-blank record. Blank records
// are skipped and missing cells read as "".
func rowsFromRecords(records [][]string) []league.Row {
	var header []string
	rows := make([]league.Row, 0, len(records))

	for _, record := range records {
		if isBlank(record) {
			continue
		}

		if header == nil {
			header = make([]string, len(record))
			for i, col := range record {
				header[i] = strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))
			}
			continue
		}

		row := make(league.Row, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
