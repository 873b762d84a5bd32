package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"LocalPaint/internal/config"
	"LocalPaint/internal/ui"

	"github.com/spf13/pflag"
)

type options struct {
	configPath string
	savePath   string
}

// parseArgs returns the options and whether to go on. When it should stop,
// code is the process exit code.
func parseArgs(args []string, stdout, stderr io.Writer) (opts options, code int, ok bool) {
	fs := pflag.NewFlagSet("paint", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}
	fs.StringVarP(&opts.configPath, "config", "c", "", "TOML settings file")

	usage := func(w io.Writer) {
		fmt.Fprintf(w, "Usage: paint [flags] [save-file]\n\nStarts with the lines of save-file when given, an empty board otherwise.\n\nFlags:\n%s\n", fs.FlagUsages())
		fmt.Fprint(w, ui.HelpText(true))
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			usage(stdout)
			return opts, 0, false
		}
		fmt.Fprintln(stderr, err)
		usage(stderr)
		return opts, 2, false
	}
	switch fs.NArg() {
	case 0:
	case 1:
		opts.savePath = fs.Arg(0)
	default:
		fmt.Fprintf(stderr, "too many arguments: %v\n", fs.Args())
		usage(stderr)
		return opts, 2, false
	}
	return opts, 0, true
}

func main() {
	opts, code, ok := parseArgs(os.Args[1:], os.Stdout, os.Stderr)
	if !ok {
		os.Exit(code)
	}

	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			log.Printf("Invalid settings: %v", err)
			os.Exit(2)
		}
	}
	if cfg.AutoDetectResolution {
		cfg.DetectResolution(context.Background(), nil)
	}

	h := ui.NewHandler(cfg)
	if opts.savePath != "" {
		// A bad file is logged and the board starts empty.
		h.LoadFile(opts.savePath)
	}

	fmt.Print(ui.HelpText(cfg.EnablePersistence))
	ui.RunApp(cfg, h)
}
