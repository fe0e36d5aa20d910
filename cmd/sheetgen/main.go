// Package main provides the CLI entrypoint for sheetgen.
//
// sheetgen reads generation jobs from inputs.json (or SHEETGEN_JOBS_FILE),
// extracts field definitions from the worksheet each job names and renders
// them through templates/code.txt (or SHEETGEN_TEMPLATE_FILE).
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"sheetgen/adapters/render"
	"sheetgen/app"
	"sheetgen/internal/config"
	"sheetgen/internal/container"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetgen",
		Short: "Generate source files from spreadsheet field definitions",
		Long: `Generate one source file per configured job from a worksheet of field definitions.

Configuration is read from the environment (and .env when present):
- SHEETGEN_JOBS_FILE (default: inputs.json)
- SHEETGEN_TEMPLATE_FILE (default: templates/code.txt)
- SHEETGEN_FAILURE_POLICY=continue|abort (default: continue)
- LOG_LEVEL=ERROR|WARN|INFO|DEBUG|TRACE (default: INFO)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(newJobsCmd(), newTemplateCmd())
	return rootCmd
}

func newJobsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jobs",
		Short: "List the configured jobs without generating anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService()
			if err != nil {
				return err
			}
			jobList, err := svc.Plan(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(jobList) == 0 {
				fmt.Fprintln(out, "no jobs configured")
				return nil
			}
			for _, job := range jobList {
				fmt.Fprintf(out, "%s\t%s[%s] -> %s (%s)\theaders=%s\n",
					job.Label(), job.InPath, job.WorkSheetName, job.OutPath, job.Namespace, strings.Join(job.Headers, ","))
			}
			return nil
		},
	}
}

func newTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print the built-in default template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), render.DefaultTemplate)
			return err
		},
	}
}

func buildService() (*app.GeneratorService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	c, err := container.New(cfg)
	if err != nil {
		return nil, err
	}
	return c.Generator, nil
}

func runGenerate(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	svc, err := buildService()
	if err != nil {
		return err
	}

	summary, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	for _, result := range summary.Results {
		switch {
		case result.Skipped:
			fmt.Fprintf(out, "SKIP %s %s\n", result.Job.Label(), result.OutputPath)
		case result.Err != nil:
			fmt.Fprintf(out, "FAIL %s %v\n", result.Job.Label(), result.Err)
		default:
			fmt.Fprintf(out, "OK   %s %s\n", result.Job.Label(), result.OutputPath)
		}
	}

	return summary.Err()
}
