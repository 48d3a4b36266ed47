package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/finreport/internal/importer"
	"github.com/cleared-dev/finreport/internal/pipeline"
	"github.com/cleared-dev/finreport/internal/report"
	"github.com/cleared-dev/finreport/internal/runlog"
)

type reportFlags struct {
	format  string
	out     string
	archive bool
	runLog  string
}

func newReportCommand(g *globalFlags) *cobra.Command {
	var f reportFlags

	cmd := &cobra.Command{
		Use:   "report [file or directory...]",
		Short: "Categorize bank CSV exports and render a report",
		Long: `Reads every given CSV file, and every *.csv directly inside each given
directory, then writes one report covering all of them. With no arguments the
project's import/ directory is read. Problems with individual rows or files are
listed on stderr and in the report; they do not fail the command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runReport(cmd, a, args, f)
		},
	}

	cmd.Flags().StringVar(&f.format, "format", "", "output format: html, xlsx or text (default from config)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write the report to this file instead of stdout")
	cmd.Flags().BoolVar(&f.archive, "archive", false, "move files without file-level errors into processed/")
	cmd.Flags().StringVar(&f.runLog, "run-log", "", "append per-file results to this CSV log (relative to the project directory)")

	return cmd
}

func runReport(cmd *cobra.Command, a *app, args []string, f reportFlags) error {
	format := f.format
	if format == "" {
		format = a.cfg.Report.Format
	}
	render, err := renderer(format)
	if err != nil {
		return err
	}
	if format == "xlsx" && f.out == "" {
		return fmt.Errorf("--out is required for xlsx output")
	}

	var paths []string
	if len(args) == 0 {
		files, err := importer.Scan(a.path("import"))
		if err != nil {
			return err
		}
		for _, fi := range files {
			paths = append(paths, fi.Path)
		}
	} else if paths, err = collectInputs(args); err != nil {
		return err
	}

	c, err := a.categorizer()
	if err != nil {
		return err
	}
	driver := pipeline.NewDriver(c, a.log, pipeline.WithReadConcurrency(a.cfg.Pipeline.ReadConcurrency))
	session := driver.Run(cmd.Context(), pipeline.FileSources(paths...))

	opts := a.reportOptions()
	opts.GeneratedAt = session.StartedAt
	summary := report.Summarize(session.Transactions, session.Errors, opts)

	if err := writeReport(cmd.OutOrStdout(), f.out, summary, render); err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	for _, e := range session.Errors {
		fmt.Fprintln(stderr, e)
	}
	fmt.Fprintf(stderr, "Processed %d files: %d transactions, %d skipped rows, %d errors\n",
		len(session.Results), len(session.Transactions), session.SkippedRows(), len(session.Errors))

	if f.runLog != "" {
		if err := runlog.Append(a.path(f.runLog), runlog.FromSession(session)); err != nil {
			return fmt.Errorf("writing run log: %w", err)
		}
	}

	if f.archive {
		for i, r := range session.Results {
			if r.Fatal {
				continue
			}
			dst, err := importer.MarkProcessed(paths[i])
			if err != nil {
				return err
			}
			a.log.Info().Str("file", r.File).Str("to", dst).Msg("archived")
		}
	}

	return nil
}

type renderFunc func(io.Writer, report.Summary) error

func renderer(format string) (renderFunc, error) {
	switch format {
	case "html":
		return report.HTML, nil
	case "xlsx":
		return report.XLSX, nil
	case "text":
		return report.Text, nil
	}
	return nil, fmt.Errorf("unknown format %q (want html, xlsx or text)", format)
}

func writeReport(stdout io.Writer, outPath string, s report.Summary, render renderFunc) error {
	if outPath == "" {
		return render(stdout, s)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := render(file, s); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing report: %w", err)
	}
	return nil
}

// collectInputs expands directories to the CSV files directly inside them.
// Files are kept as given, in argument order.
func collectInputs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			// Unreadable files are reported by the pipeline.
			paths = append(paths, arg)
			continue
		}
		files, err := importer.Scan(arg)
		if err != nil {
			return nil, err
		}
		for _, fi := range files {
			paths = append(paths, fi.Path)
		}
	}
	return paths, nil
}
