package projection

import (
	"fmt"
	"strings"

	"sheetgen/domain/codegen"
	"sheetgen/internal"
	"sheetgen/internal/errors"
)

// firstDataRow is the sheet row number of Sheet.Rows[0]
const firstDataRow = 2

// Projector walks data rows and assembles field triples
type Projector struct {
	logger *internal.Logger
}

// NewProjector creates a projector
func NewProjector(logger *internal.Logger) *Projector {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Projector{logger: logger.With("Projector")}
}

// Project converts rows, which start at sheet row 2, into triples in row
// order. Sentinel rows and blank rows are skipped. Any other row must yield
// exactly codegen.FieldArity values.
func (p *Projector) Project(job codegen.Job, match codegen.HeaderMatch, rows [][]string) ([]codegen.FieldTriple, error) {
	fields := make([]codegen.FieldTriple, 0, len(rows))

	for i, row := range rows {
		rowNum := i + firstDataRow

		if isBlank(row, match) {
			p.logger.Trace("job %s row %d: blank, skipped", job.Label(), rowNum)
			continue
		}

		values, sentinel := collect(row, match)
		if sentinel {
			p.logger.Debug("job %s row %d: sentinel %q, skipped", job.Label(), rowNum, row[match.Positions()[0]])
			continue
		}
		if len(values) == 0 {
			continue
		}
		if len(values) != codegen.FieldArity {
			return nil, errors.RowInvalid(job.Label(), rowNum,
				fmt.Sprintf("expected %d values, got %d", codegen.FieldArity, len(values)))
		}

		fields = append(fields, codegen.FieldTriple{
			Name:   values[codegen.RoleName],
			Type:   values[codegen.RoleType],
			Remark: values[codegen.RoleRemark],
		})
	}

	return fields, nil
}

// collect reads the bound cells of row in role order. The first position is
// the name column: a "##" prefix there marks a sentinel row, otherwise its
// value is replaced by codegen.NameToken. Cells past the end of the row are
// missing and contribute nothing.
func collect(row []string, match codegen.HeaderMatch) ([]string, bool) {
	values := make([]string, 0, match.Len())
	for i, col := range match.Positions() {
		if col >= len(row) {
			continue
		}
		cell := row[col]
		if i == 0 {
			if strings.HasPrefix(cell, codegen.SentinelPrefix) {
				return nil, true
			}
			values = append(values, codegen.NameToken)
			continue
		}
		values = append(values, ContinueLines(cell))
	}
	return values, false
}

// ContinueLines rewrites line breaks so that each following line carries the
// doc-comment continuation marker.
func ContinueLines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\n", codegen.RemarkContinuation)
}

func isBlank(row []string, match codegen.HeaderMatch) bool {
	for _, col := range match.Positions() {
		if col < len(row) && strings.TrimSpace(row[col]) != "" {
			return false
		}
	}
	return true
}
