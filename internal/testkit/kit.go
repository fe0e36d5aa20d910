// Package testkit builds on-disk fixtures for generation tests.
package testkit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"sheetgen/domain/codegen"

	"github.com/xuri/excelize/v2"
)

// DefaultHeaders is the conventional name/type/remark header row.
var DefaultHeaders = []string{"##var", "type", "remark"}

// SheetSpec describes one worksheet of a fixture workbook
type SheetSpec struct {
	Name string
	Rows [][]string
}

// WriteWorkbook saves an .xlsx file at path containing the given sheets.
// The default "Sheet1" is renamed to the first sheet.
func WriteWorkbook(t testing.TB, path string, sheets ...SheetSpec) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			t.Fatalf("create sheet %s: %v", sheet.Name, err)
		}

		for r, row := range sheet.Rows {
			cells := make([]interface{}, len(row))
			for c, v := range row {
				cells[c] = v
			}
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetSheetRow(sheet.Name, cell, &cells); err != nil {
				t.Fatalf("write row %d: %v", r+1, err)
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}

// NewJob returns a job reading sheet from dir/in.xlsx and writing dir/out.cs
func NewJob(dir, sheet, className string) codegen.Job {
	return codegen.Job{
		Headers:       append([]string(nil), DefaultHeaders...),
		WorkSheetName: sheet,
		ClassName:     className,
		InPath:        filepath.Join(dir, className+".xlsx"),
		OutPath:       filepath.Join(dir, "gen", className+".cs"),
		Namespace:     "Game.Config",
	}
}

// WriteJobsFile writes jobs as a JSON array and returns its path
func WriteJobsFile(t testing.TB, dir string, jobs ...codegen.Job) string {
	t.Helper()

	if jobs == nil {
		jobs = []codegen.Job{}
	}
	data, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		t.Fatalf("marshal jobs: %v", err)
	}
	path := filepath.Join(dir, "inputs.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write jobs: %v", err)
	}
	return path
}
