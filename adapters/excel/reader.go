package excel

import (
	"context"
	"os"
	"strings"
	"time"

	"sheetgen/domain/codegen"
	"sheetgen/internal"
	"sheetgen/internal/errors"

	"github.com/xuri/excelize/v2"
)

// SheetReader reads worksheets from .xlsx workbooks
type SheetReader struct {
	logger *internal.Logger
}

// NewSheetReader creates a new sheet reader
func NewSheetReader(logger *internal.Logger) *SheetReader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &SheetReader{logger: logger.With("ExcelReader")}
}

// ReadSheet opens the workbook at path and returns the named sheet. Row 1 is
// the header; data rows are padded to the header width because excelize
// drops trailing empty cells.
func (r *SheetReader) ReadSheet(ctx context.Context, path, sheet string) (*codegen.Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		return nil, errors.WorkbookOpen(path, err)
	}

	startTime := time.Now()
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WorkbookOpen(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			r.logger.Warn("failed to close %s: %v", path, cerr)
		}
	}()
	r.logger.Debug("workbook %s opened in %.2fms", path, float64(time.Since(startTime).Nanoseconds())/1e6)

	if !hasSheet(f.GetSheetList(), sheet) {
		return nil, errors.SheetNotFound(path, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.WorkbookOpen(path, err)
	}
	if len(rows) == 0 {
		return nil, errors.ValidationError("worksheet " + sheet + " in " + path + " has no header row")
	}

	return toSheet(sheet, rows), nil
}

func hasSheet(names []string, sheet string) bool {
	for _, name := range names {
		if name == sheet {
			return true
		}
	}
	return false
}

func toSheet(name string, rows [][]string) *codegen.Sheet {
	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = strings.TrimSpace(cell)
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < len(header) {
			padded := make([]string, len(header))
			copy(padded, row)
			row = padded
		}
		data = append(data, row)
	}

	return &codegen.Sheet{Name: name, Header: header, Rows: data}
}
