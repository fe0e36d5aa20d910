package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"sheetgen/domain/codegen"
	"sheetgen/internal/errors"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileSource loads jobs from a JSON or YAML file
type FileSource struct {
	path     string
	validate *validator.Validate
}

// NewFileSource creates a job source for path. The format follows the file
// extension: .yaml/.yml is YAML, anything else is JSON.
func NewFileSource(path string) *FileSource {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &FileSource{path: path, validate: v}
}

// Path returns the file the source reads from
func (s *FileSource) Path() string {
	return s.path
}

// Load reads and validates every job. An empty list is not an error.
func (s *FileSource) Load(ctx context.Context) ([]codegen.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.ConfigInvalidf(err, "failed to read jobs file %s", s.path)
	}

	jobs, err := s.decode(data)
	if err != nil {
		return nil, errors.ConfigInvalidf(err, "failed to parse jobs file %s", s.path)
	}

	for i := range jobs {
		jobs[i].Index = i
		if err := s.validate.Struct(jobs[i]); err != nil {
			return nil, errors.ConfigInvalidf(nil, "jobs file %s: job %d: %s", s.path, i, describe(err))
		}
	}

	return jobs, nil
}

func (s *FileSource) decode(data []byte) ([]codegen.Job, error) {
	var jobs []codegen.Job
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, fmt.Errorf("file is empty")
		}
		if err := yaml.Unmarshal(data, &jobs); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &jobs); err != nil {
			return nil, err
		}
	}
	return jobs, nil
}

// describe flattens validator errors into "field: rule" pairs
func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s: %s", field, rule))
	}
	return strings.Join(parts, "; ")
}
