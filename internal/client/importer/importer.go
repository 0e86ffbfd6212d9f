// Package importer reads prospect lists from spreadsheets for the Untouched
// Data page. One sheet per file; the first row holds the headers.
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dmitrijs2005/salesdesk/internal/client/forms"
)

var (
	ErrNoSheet        = errors.New("no worksheet found")
	ErrMultipleSheets = errors.New("multiple worksheets found; please upload a file with a single sheet")
	ErrEmpty          = errors.New("worksheet is empty")
	ErrUnsupported    = errors.New("unsupported file type; use .xlsx or .csv")
)

// RowError reports a data row that could not be used. Row is 1-based and
// counts the header row.
type RowError struct {
	Row     int
	Message string
}

func (e RowError) Error() string { return fmt.Sprintf("row %d: %s", e.Row, e.Message) }

// Result holds the usable prospects in file order, the sheet row each one
// came from, and the rows that were skipped.
type Result struct {
	Prospects []forms.ProspectForm
	Rows      []int
	Errors    []RowError
}

const (
	colCompany  = "company name"
	colClient   = "client name"
	colEmail    = "email"
	colContact  = "contact no"
	colReminder = "reminder date"
	colComment  = "comment"
	colExecutor = "executive email"
)

var headerAliases = map[string]string{
	"company name":                colCompany,
	"companyname":                 colCompany,
	"company":                     colCompany,
	"client name":                 colClient,
	"clientname":                  colClient,
	"client":                      colClient,
	"email":                       colEmail,
	"email id":                    colEmail,
	"emailid":                     colEmail,
	"contact":                     colContact,
	"contact no":                  colContact,
	"contactno":                   colContact,
	"contact number":              colContact,
	"phone":                       colContact,
	"reminder date":               colReminder,
	"reminderdate":                colReminder,
	"reminder":                    colReminder,
	"comment":                     colComment,
	"comments":                    colComment,
	"executive email":             colExecutor,
	"assigned to executive email": colExecutor,
	"assignedtoexecutiveemail":    colExecutor,
}

// ReadFile opens path and parses it by extension.
func ReadFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	return Read(filepath.Base(path), bytes.NewReader(data))
}

// Read parses a .xlsx or .csv stream; name only selects the format.
func Read(name string, r io.Reader) (Result, error) {
	rows, err := readRows(name, r)
	if err != nil {
		return Result{}, err
	}
	return parseRows(rows)
}

func readRows(name string, r io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		file, err := excelize.OpenReader(r)
		if err != nil {
			return nil, err
		}
		defer func() { _ = file.Close() }()

		sheets := file.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheet
		}
		if len(sheets) > 1 {
			return nil, ErrMultipleSheets
		}
		rows, err := file.GetRows(sheets[0])
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, ErrEmpty
		}
		return rows, nil
	case ".csv":
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		rows, err := cr.ReadAll()
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, ErrEmpty
		}
		return rows, nil
	default:
		return nil, ErrUnsupported
	}
}

func parseRows(rows [][]string) (Result, error) {
	index := map[string]int{}
	for i, h := range rows[0] {
		if col, ok := headerAliases[normalizeHeader(h)]; ok {
			if _, seen := index[col]; !seen {
				index[col] = i
			}
		}
	}
	var missing []string
	for _, col := range []string{colCompany, colClient} {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return Result{}, fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}

	get := func(row []string, col string) string {
		idx, ok := index[col]
		if !ok {
			return ""
		}
		return cellValue(row, idx)
	}

	var res Result
	for i, row := range rows[1:] {
		rowNum := i + 2
		if blank(row) {
			continue
		}
		p := forms.ProspectForm{
			CompanyName:              get(row, colCompany),
			ClientName:               get(row, colClient),
			EmailID:                  get(row, colEmail),
			ContactNo:                get(row, colContact),
			Comment:                  get(row, colComment),
			AssignedToExecutiveEmail: get(row, colExecutor),
		}
		if raw := get(row, colReminder); raw != "" {
			date, ok := normalizeDate(raw)
			if !ok {
				res.Errors = append(res.Errors, RowError{Row: rowNum, Message: fmt.Sprintf("invalid reminder date %q", raw)})
				continue
			}
			p.ReminderDate = date
		}
		if err := p.Validate(); err != nil {
			res.Errors = append(res.Errors, RowError{Row: rowNum, Message: err.Error()})
			continue
		}
		res.Prospects = append(res.Prospects, p)
		res.Rows = append(res.Rows, rowNum)
	}
	return res, nil
}

func normalizeHeader(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	h = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(h)
	return strings.Join(strings.Fields(h), " ")
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

var dateFormats = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2/1/2006",
	"01-02-06",
	time.RFC3339,
}

// normalizeDate accepts ISO and day-first dates as well as Excel serials
// and returns YYYY-MM-DD.
func normalizeDate(value string) (string, bool) {
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		// plausible range 1954..2119
		if serial >= 20000 && serial <= 80000 {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return t.Format(time.DateOnly), true
			}
		}
		return "", false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(time.DateOnly), true
		}
	}
	return "", false
}
