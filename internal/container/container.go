package container

import (
	"fmt"

	"sheetgen/adapters/excel"
	"sheetgen/adapters/jobs"
	"sheetgen/adapters/output"
	"sheetgen/adapters/render"
	"sheetgen/app"
	"sheetgen/internal"
	"sheetgen/internal/config"
	"sheetgen/ports"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Adapters
	JobSource ports.JobSource
	Reader    ports.WorkbookReader
	Renderer  ports.Renderer
	Writer    ports.OutputWriter

	// Services
	Generator *app.GeneratorService
}

// New creates a new dependency injection container from cfg
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	logger := internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level))

	c := &Container{
		Config:    cfg,
		Logger:    logger,
		JobSource: jobs.NewFileSource(cfg.Paths.JobsFile),
		Reader:    excel.NewSheetReader(logger),
		Renderer:  render.NewFileRenderer(cfg.Paths.TemplateFile),
		Writer:    output.NewFileWriter(),
	}
	c.Generator = app.NewGeneratorService(c.JobSource, c.Reader, c.Renderer, c.Writer, cfg.Run.FailurePolicy, logger)

	return c, nil
}
