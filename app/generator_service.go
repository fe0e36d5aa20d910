package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sheetgen/domain/codegen"
	"sheetgen/domain/core"
	"sheetgen/internal"
	"sheetgen/internal/config"
	"sheetgen/internal/errors"
	"sheetgen/internal/projection"
	"sheetgen/ports"
)

// GeneratorService runs every configured job through
// extract -> match -> project -> render -> write, one job at a time.
type GeneratorService struct {
	jobSource ports.JobSource
	reader    ports.WorkbookReader
	renderer  ports.Renderer
	writer    ports.OutputWriter
	projector *projection.Projector
	policy    config.FailurePolicy
	logger    *internal.Logger
}

// JobResult is the outcome of one job
type JobResult struct {
	Job        codegen.Job
	OutputPath string
	FieldCount int
	OutputHash core.Hash
	Duration   time.Duration
	Err        error
	Skipped    bool
}

// Succeeded reports whether the job wrote its output
func (r JobResult) Succeeded() bool {
	return !r.Skipped && r.Err == nil
}

// RunSummary collects the results of one run in job order
type RunSummary struct {
	RunID     core.RunID
	StartedAt time.Time
	Duration  time.Duration
	Results   []JobResult
}

// Succeeded counts jobs that wrote their output
func (s *RunSummary) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if r.Succeeded() {
			n++
		}
	}
	return n
}

// Failed counts jobs that returned an error
func (s *RunSummary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Skipped counts jobs not attempted because an earlier job failed under the abort policy
func (s *RunSummary) Skipped() int {
	n := 0
	for _, r := range s.Results {
		if r.Skipped {
			n++
		}
	}
	return n
}

// Err returns nil when every job succeeded, otherwise an error listing the failures
func (s *RunSummary) Err() error {
	failed := s.Failed()
	if failed == 0 {
		return nil
	}
	labels := make([]string, 0, failed)
	for _, r := range s.Results {
		if r.Err != nil {
			labels = append(labels, r.Job.Label())
		}
	}
	return fmt.Errorf("%d of %d jobs failed: %s", failed, len(s.Results), strings.Join(labels, ", "))
}

// NewGeneratorService creates a generator service
func NewGeneratorService(jobSource ports.JobSource, reader ports.WorkbookReader, renderer ports.Renderer, writer ports.OutputWriter, policy config.FailurePolicy, logger *internal.Logger) *GeneratorService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if policy == "" {
		policy = config.PolicyContinue
	}
	return &GeneratorService{
		jobSource: jobSource,
		reader:    reader,
		renderer:  renderer,
		writer:    writer,
		projector: projection.NewProjector(logger),
		policy:    policy,
		logger:    logger.With("Generator"),
	}
}

// Plan loads the job list without touching any workbook
func (s *GeneratorService) Plan(ctx context.Context) ([]codegen.Job, error) {
	return s.jobSource.Load(ctx)
}

// Run loads the job list and processes each job in order. A job list that
// cannot be loaded is returned as the error and no job runs; per-job
// failures are recorded in the summary instead.
func (s *GeneratorService) Run(ctx context.Context) (*RunSummary, error) {
	summary := &RunSummary{RunID: core.NewRunID(), StartedAt: time.Now()}

	jobs, err := s.jobSource.Load(ctx)
	if err != nil {
		return summary, err
	}
	if len(jobs) == 0 {
		s.logger.Info("run %s: no jobs configured", summary.RunID)
		return summary, nil
	}

	s.logger.Info("run %s: %d jobs, failure policy %s", summary.RunID, len(jobs), s.policy)

	aborted := false
	for _, job := range jobs {
		if aborted {
			summary.Results = append(summary.Results, JobResult{Job: job, OutputPath: job.OutPath, Skipped: true})
			continue
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result := s.runJob(ctx, job)
		summary.Results = append(summary.Results, result)

		if result.Err != nil {
			s.logger.Error("job %s failed [%s]: %v", job.Label(), errors.GetCode(result.Err), result.Err)
			if s.policy == config.PolicyAbort {
				aborted = true
			}
			continue
		}
		s.logger.Info("job %s generated %s (%d fields, sha256 %s)", job.Label(), result.OutputPath, result.FieldCount, result.OutputHash.Short())
	}

	summary.Duration = time.Since(summary.StartedAt)
	if aborted {
		s.logger.Warn("run %s aborted: %d jobs skipped", summary.RunID, summary.Skipped())
	}
	s.logger.Info("run %s finished in %s: %d succeeded, %d failed", summary.RunID, summary.Duration.Round(time.Millisecond), summary.Succeeded(), summary.Failed())

	return summary, nil
}

func (s *GeneratorService) runJob(ctx context.Context, job codegen.Job) JobResult {
	startTime := time.Now()
	result := JobResult{Job: job, OutputPath: job.OutPath}

	content, fieldCount, err := s.generate(ctx, job)
	if err == nil {
		err = s.writer.Write(ctx, job.OutPath, content)
	}

	result.Duration = time.Since(startTime)
	if err != nil {
		result.Err = errors.Wrapf(err, "job %s", job.Label())
		return result
	}
	result.FieldCount = fieldCount
	result.OutputHash = core.NewHash(content)
	return result
}

// generate produces the rendered text for job without writing it
func (s *GeneratorService) generate(ctx context.Context, job codegen.Job) ([]byte, int, error) {
	sheet, err := s.reader.ReadSheet(ctx, job.InPath, job.WorkSheetName)
	if err != nil {
		return nil, 0, err
	}
	s.logger.Debug("job %s: sheet %s has %d data rows", job.Label(), sheet.Name, len(sheet.Rows))

	match, err := projection.MatchHeaders(job, sheet.Header)
	if err != nil {
		return nil, 0, err
	}

	fields, err := s.projector.Project(job, match, sheet.Rows)
	if err != nil {
		return nil, 0, err
	}

	content, err := s.renderer.Render(ctx, ports.RenderInput{
		Namespace: job.Namespace,
		ClassName: job.ClassName,
		Fields:    fields,
	})
	if err != nil {
		return nil, 0, err
	}
	return content, len(fields), nil
}
