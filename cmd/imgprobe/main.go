// Command imgprobe prints the format and pixel size of image files and
// renders reports about them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fumiama/imgprobe/internal/config"
	"github.com/fumiama/imgprobe/internal/log"
	"github.com/google/subcommands"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage %v: [flag]... <command> [arg]...\n"+
			"Identifies image files and reads their dimensions.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	configFile := flag.String("config", defaultConfigPath(), "Path to YAML config file")
	verbose := flag.Bool("v", false, "Log debug messages to stderr")

	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.HelpCommand(), "")

	var cfg config.Config
	subcommands.Register(&infoCommand{cfg: &cfg}, "")
	subcommands.Register(&reportCommand{cfg: &cfg}, "")

	flag.Parse()

	if *verbose {
		log.SetLevel(log.LevelDebug)
	}
	if cmd := flag.Arg(0); cmd != "commands" && cmd != "flags" && cmd != "help" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			fmt.Fprintln(os.Stderr, "Unable to read config file:", err)
			os.Exit(int(subcommands.ExitUsageError))
		}
		log.Debug("loaded config", "path", *configFile, "workers", cfg.Workers,
			"max_file_size", cfg.MaxFileSize)
	}

	os.Exit(int(subcommands.Execute(context.Background())))
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "imgprobe", "config.yaml")
}
