package ports

import (
	"context"

	"sheetgen/domain/codegen"
)

// WorkbookReader reads one worksheet of a workbook as text.
// Implementations return WORKBOOK_OPEN when the file cannot be opened and
// SHEET_NOT_FOUND when the named sheet is absent.
type WorkbookReader interface {
	ReadSheet(ctx context.Context, path, sheet string) (*codegen.Sheet, error)
}
