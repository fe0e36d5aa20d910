// Package projection turns worksheet rows into field triples.
package projection

import (
	"fmt"
	"strings"

	"sheetgen/domain/codegen"
	"sheetgen/internal/errors"
)

// headerRow is the sheet row number of the header, used in error messages
const headerRow = 1

// MatchHeaders binds each declared header of job to its column in header.
// Roles follow the declared order, so the sheet may order its columns freely.
// Every declared name must appear exactly once.
func MatchHeaders(job codegen.Job, header []string) (codegen.HeaderMatch, error) {
	positions := make(map[string][]int, len(header))
	for i, cell := range header {
		name := strings.TrimSpace(cell)
		if name == "" {
			continue
		}
		positions[name] = append(positions[name], i)
	}

	columns := make([]int, 0, len(job.Headers))
	for i, declared := range job.Headers {
		role := codegen.Role(i)
		found := positions[strings.TrimSpace(declared)]
		switch len(found) {
		case 0:
			return codegen.HeaderMatch{}, errors.RowInvalid(job.Label(), headerRow,
				fmt.Sprintf("%s header %q not found in sheet %s", role, declared, job.WorkSheetName))
		case 1:
			columns = append(columns, found[0])
		default:
			return codegen.HeaderMatch{}, errors.RowInvalid(job.Label(), headerRow,
				fmt.Sprintf("%s header %q appears in columns %s", role, declared, columnList(found)))
		}
	}

	return codegen.NewHeaderMatch(columns...), nil
}

func columnList(cols []int) string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = columnName(c)
	}
	return strings.Join(names, ", ")
}

// columnName converts a 0-based column index to its letter form (A, ..., Z, AA, ...)
func columnName(colIdx int) string {
	result := ""
	colIdx++
	for colIdx > 0 {
		colIdx--
		result = string(rune('A'+(colIdx%26))) + result
		colIdx /= 26
	}
	return result
}
