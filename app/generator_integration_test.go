package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"sheetgen/adapters/excel"
	"sheetgen/adapters/jobs"
	"sheetgen/adapters/output"
	"sheetgen/adapters/render"
	"sheetgen/internal"
	"sheetgen/internal/config"
	"sheetgen/internal/errors"
	"sheetgen/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRealService(jobsFile string) *GeneratorService {
	return NewGeneratorService(
		jobs.NewFileSource(jobsFile),
		excel.NewSheetReader(internal.Discard),
		render.NewDefaultRenderer(),
		output.NewFileWriter(),
		config.PolicyContinue,
		internal.Discard,
	)
}

func TestGenerateFromWorkbook(t *testing.T) {
	dir := t.TempDir()
	job := testkit.NewJob(dir, "Player", "PlayerConfig")
	testkit.WriteWorkbook(t, job.InPath, testkit.SheetSpec{Name: "Player", Rows: [][]string{
		{"##var", "type", "remark"},
		{"##legend", "column type", "column meaning"},
		{"id", "int", "the identifier"},
		{"bio", "string", "line one\nline two"},
	}})
	jobsFile := testkit.WriteJobsFile(t, dir, job)

	summary, err := newRealService(jobsFile).Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, summary.Err())
	assert.Equal(t, 2, summary.Results[0].FieldCount)

	got, err := os.ReadFile(job.OutPath)
	require.NoError(t, err)
	assert.Equal(t, `// <auto-generated>
// Generated by sheetgen. Do not edit by hand.
// </auto-generated>
namespace Game.Config
{
    public partial class PlayerConfig
    {
        /// <summary>
        /// the identifier
        /// </summary>
        public string int { get; set; }

        /// <summary>
        /// line one
        /// line two
        /// </summary>
        public string string { get; set; }
    }
}
`, string(got))
}

func TestGenerateTwiceIsByteIdentical(t *testing.T) {
	dir := t.TempDir()
	job := testkit.NewJob(dir, "Item", "ItemConfig")
	testkit.WriteWorkbook(t, job.InPath, testkit.SheetSpec{Name: "Item", Rows: [][]string{
		{"##var", "type", "remark"},
		{"id", "int", "the identifier"},
		{"price", "float", "unit price\nin gold"},
	}})
	svc := newRealService(testkit.WriteJobsFile(t, dir, job))

	first, err := svc.Run(context.Background())
	require.NoError(t, err)
	firstBytes, err := os.ReadFile(job.OutPath)
	require.NoError(t, err)

	second, err := svc.Run(context.Background())
	require.NoError(t, err)
	secondBytes, err := os.ReadFile(job.OutPath)
	require.NoError(t, err)

	assert.Equal(t, firstBytes, secondBytes)
	assert.Equal(t, first.Results[0].OutputHash, second.Results[0].OutputHash)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestGenerateReplacesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	job := testkit.NewJob(dir, "Player", "PlayerConfig")
	testkit.WriteWorkbook(t, job.InPath, testkit.SheetSpec{Name: "Player", Rows: [][]string{
		{"##var", "type", "remark"},
		{"id", "int", "the identifier"},
	}})
	require.NoError(t, os.MkdirAll(filepath.Dir(job.OutPath), 0o755))
	require.NoError(t, os.WriteFile(job.OutPath, []byte("STALE CONTENT MARKER\n"), 0o644))

	summary, err := newRealService(testkit.WriteJobsFile(t, dir, job)).Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, summary.Err())

	got, err := os.ReadFile(job.OutPath)
	require.NoError(t, err)
	assert.NotContains(t, string(got), "STALE CONTENT MARKER")
	assert.Contains(t, string(got), "public partial class PlayerConfig")
}

func TestGenerateWithNoJobsWritesNothing(t *testing.T) {
	dir := t.TempDir()
	jobsFile := testkit.WriteJobsFile(t, dir)

	summary, err := newRealService(jobsFile).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summary.Results)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the jobs file exists")
}

func TestGenerateIsolatesJobFailures(t *testing.T) {
	dir := t.TempDir()
	broken := testkit.NewJob(dir, "Missing", "BrokenConfig")
	testkit.WriteWorkbook(t, broken.InPath, testkit.SheetSpec{Name: "Other", Rows: [][]string{{"##var", "type", "remark"}}})

	good := testkit.NewJob(dir, "Player", "PlayerConfig")
	testkit.WriteWorkbook(t, good.InPath, testkit.SheetSpec{Name: "Player", Rows: [][]string{
		{"##var", "type", "remark"},
		{"id", "int", "the identifier"},
	}})

	summary, err := newRealService(testkit.WriteJobsFile(t, dir, broken, good)).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Results, 2)

	assert.Equal(t, errors.CodeSheetNotFound, errors.GetCode(summary.Results[0].Err))
	assert.True(t, summary.Results[1].Succeeded())
	assert.FileExists(t, good.OutPath)
	assert.NoFileExists(t, broken.OutPath)
	assert.Error(t, summary.Err())
}
