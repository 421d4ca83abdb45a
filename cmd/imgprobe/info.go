package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fumiama/imgprobe/internal/config"
	"github.com/fumiama/imgprobe/internal/probe"
	"github.com/google/subcommands"
	"github.com/mailru/easyjson"
	"github.com/mattn/go-runewidth"
)

type infoCommand struct {
	cfg  *config.Config
	json bool // print JSON lines
}

func (*infoCommand) Name() string     { return "info" }
func (*infoCommand) Synopsis() string { return "print format and size of image files" }
func (*infoCommand) Usage() string {
	return `info [flags] <path>...:
	Print the format and pixel size of each file.

`
}

func (cmd *infoCommand) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.json, "json", false, "Print one JSON object per file")
}

func (cmd *infoCommand) Execute(ctx context.Context, fs *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "No files supplied")
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
	if cmd.json {
		err = writeJSONLines(os.Stdout, results)
	} else {
		err = writeInfo(os.Stdout, results)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed writing output:", err)
		return subcommands.ExitFailure
	}
	if probe.Failed(results) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func writeJSONLines(w io.Writer, results []probe.Result) error {
	for _, r := range results {
		if _, err := easyjson.MarshalToWriter(r, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// writeInfo writes one aligned line per result.
func writeInfo(w io.Writer, results []probe.Result) error {
	var width int
	for _, r := range results {
		if n := runewidth.StringWidth(r.Path); n > width {
			width = n
		}
	}
	for _, r := range results {
		name := runewidth.FillRight(r.Path, width)
		var err error
		if r.Err != nil {
			_, err = fmt.Fprintf(w, "%s  error: %v\n", name, r.Err)
		} else {
			_, err = fmt.Fprintf(w, "%s  %-4s  %dx%d\n", name, r.Image.Format, r.Image.Width, r.Image.Height)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
