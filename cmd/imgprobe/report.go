package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fumiama/imgprobe/internal/config"
	"github.com/fumiama/imgprobe/internal/log"
	"github.com/fumiama/imgprobe/internal/probe"
	"github.com/fumiama/imgprobe/internal/report"
	"github.com/google/subcommands"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

type reportCommand struct {
	cfg    *config.Config
	format string // overrides cfg.Report.Format
	title  string // overrides cfg.Report.Title
	out    string // output path; stdout if empty
}

func (*reportCommand) Name() string     { return "report" }
func (*reportCommand) Synopsis() string { return "write an HTML or Markdown report about image files" }
func (*reportCommand) Usage() string {
	return `report [flags] <path>...:
	Write a report listing each file's format and size. HTML reports embed
	the images inline. Markdown written to a terminal is rendered.

`
}

func (cmd *reportCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.format, "format", "", `Report format ("html" or "markdown"; default from config)`)
	f.StringVar(&cmd.title, "title", "", "Report title (default from config)")
	f.StringVar(&cmd.out, "o", "", "File to write report to (default stdout)")
}

func (cmd *reportCommand) Execute(ctx context.Context, fs *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "No files supplied")
		return subcommands.ExitUsageError
	}
	rc := cmd.cfg.Report
	if cmd.format != "" {
		rc.Format = cmd.format
	}
	if cmd.title != "" {
		rc.Title = cmd.title
	}
	if rc.Format != config.FormatHTML && rc.Format != config.FormatMarkdown {
		fmt.Fprintf(os.Stderr, "Unknown format %q\n", rc.Format)
		return subcommands.ExitUsageError
	}

	results, err := probe.Files(ctx, fs.Args(), probe.Options{
		MaxFileSize: cmd.cfg.MaxFileSize,
		Workers:     cmd.cfg.Workers,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed probing files:", err)
		return subcommands.ExitFailure
	}
	for _, r := range results {
		if r.Err != nil {
			log.Warn("skipping file", "path", r.Path, "err", r.Err)
		}
	}

	if err := cmd.write(rc, results); err != nil {
		fmt.Fprintln(os.Stderr, "Failed writing report:", err)
		return subcommands.ExitFailure
	}
	if probe.Failed(results) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (cmd *reportCommand) write(rc config.Report, results []probe.Result) error {
	var w io.Writer = os.Stdout
	if cmd.out != "" {
		f, err := os.Create(cmd.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if rc.Format == config.FormatHTML {
		if err := report.HTML(w, rc.Title, results); err != nil {
			return err
		}
		return closeOutput(w)
	}

	md := report.Markdown(rc.Title, results)
	if cmd.out == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		width := 80
		if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 {
			width = cols
		}
		if rendered, err := report.Terminal(md, "", width); err != nil {
			log.Warn("rendering markdown failed", "err", err)
		} else {
			md = rendered
		}
	}
	if _, err := io.WriteString(w, md); err != nil {
		return err
	}
	return closeOutput(w)
}

// closeOutput closes w if it is a file other than stdout, so that write
// errors surfacing on close are reported.
func closeOutput(w io.Writer) error {
	if f, ok := w.(*os.File); ok && f != os.Stdout {
		return errors.Wrap(f.Close(), "closing output")
	}
	return nil
}
