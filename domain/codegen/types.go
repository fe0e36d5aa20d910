// Package codegen holds the value types shared by the sheet-to-source pipeline.
package codegen

import (
	"fmt"
	"strings"
)

// Role is the semantic meaning of a declared header, taken from its position
// in Job.Headers.
type Role int

const (
	RoleName Role = iota
	RoleType
	RoleRemark
)

func (r Role) String() string {
	switch r {
	case RoleName:
		return "name"
	case RoleType:
		return "type"
	case RoleRemark:
		return "remark"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

const (
	// FieldArity is the number of values every surviving row must yield.
	FieldArity = 3

	// SentinelPrefix marks legend rows in the name column.
	SentinelPrefix = "##"

	// NameToken replaces the name cell of every data row.
	NameToken = "string"

	// RemarkContinuation replaces each line break in type and remark cells so
	// multi-line text continues as doc-comment lines in the generated class.
	RemarkContinuation = "\n        /// "
)

// Job is one generation task as declared in the jobs file.
type Job struct {
	Headers       []string `json:"headers" yaml:"headers" validate:"required,len=3,dive,required"`
	WorkSheetName string   `json:"work_sheet_name" yaml:"work_sheet_name" validate:"required"`
	ClassName     string   `json:"class_name" yaml:"class_name" validate:"required"`
	InPath        string   `json:"in_path" yaml:"in_path" validate:"required"`
	OutPath       string   `json:"out_path" yaml:"out_path" validate:"required"`
	Namespace     string   `json:"namespace" yaml:"namespace" validate:"required"`

	// Index is the job's position in the jobs file, set by the loader.
	Index int `json:"-" yaml:"-"`
}

// Label identifies the job in logs and errors.
func (j Job) Label() string {
	return fmt.Sprintf("%d:%s", j.Index, j.ClassName)
}

// Sheet is the raw text grid of one worksheet. Header is sheet row 1; Rows
// starts at sheet row 2.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// HeaderMatch binds each role, in role order, to a 0-based sheet column.
type HeaderMatch struct {
	columns []int
}

// NewHeaderMatch builds a match from columns listed in role order.
func NewHeaderMatch(columns ...int) HeaderMatch {
	return HeaderMatch{columns: append([]int(nil), columns...)}
}

// Positions returns the bound columns in role order.
func (m HeaderMatch) Positions() []int {
	return append([]int(nil), m.columns...)
}

// Len is the number of bound roles.
func (m HeaderMatch) Len() int {
	return len(m.columns)
}

// Column returns the column bound to r.
func (m HeaderMatch) Column(r Role) (int, bool) {
	if int(r) < 0 || int(r) >= len(m.columns) {
		return 0, false
	}
	return m.columns[r], true
}

// FieldTriple is one generated field.
type FieldTriple struct {
	Name   string
	Type   string
	Remark string
}

func (f FieldTriple) String() string {
	return fmt.Sprintf("(%s, %s, %s)", f.Name, f.Type, strings.ReplaceAll(f.Remark, "\n", `\n`))
}
