package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/viant/afs"
	"github.com/viant/randsym"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const usage = `usage: randsym [options] file|dir...

options:
  -s          report malformed markers as errors
  -d          print a unified diff instead of the expansion
  -c URL      YAML config location
  -o URL      output folder, stdout when omitted
  -e EXTS     comma separated extensions for folder sources, e.g. .rs,.go
  -h          print this help
`

type options struct {
	strict     bool
	diff       bool
	configURL  string
	output     string
	extensions []string
	locations  []string
}

func parseOptions(args []string) (*options, bool, error) {
	opts, optind, err := getopt.Getopts(args, "sdc:o:e:h")
	if err != nil {
		return nil, false, err
	}
	ret := &options{}
	for _, opt := range opts {
		switch opt.Option {
		case 's':
			ret.strict = true
		case 'd':
			ret.diff = true
		case 'c':
			ret.configURL = opt.Value
		case 'o':
			ret.output = opt.Value
		case 'e':
			for _, ext := range strings.Split(opt.Value, ",") {
				if ext = strings.TrimSpace(ext); ext != "" {
					ret.extensions = append(ret.extensions, ext)
				}
			}
		case 'h':
			return ret, true, nil
		}
	}
	ret.locations = args[optind:]
	if len(ret.locations) == 0 {
		return nil, false, fmt.Errorf("no source specified")
	}
	return ret, false, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	errorf := color.New(color.FgRed).FprintfFunc()
	opts, help, err := parseOptions(args)
	if help {
		fmt.Fprint(stdout, usage)
		return exitOK
	}
	if err != nil {
		errorf(stderr, "randsym: %v\n", err)
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	ctx := context.Background()
	fs := afs.New()
	config := randsym.DefaultConfig()
	if opts.configURL != "" {
		if config, err = randsym.LoadConfig(ctx, fs, opts.configURL); err != nil {
			errorf(stderr, "randsym: %v\n", err)
			return exitUsage
		}
	}
	if opts.strict {
		config.Strict = true
	}
	if opts.output != "" {
		config.Output = opts.output
	}
	if len(opts.extensions) > 0 {
		config.Extensions = opts.extensions
	}
	if err = config.Validate(); err != nil {
		errorf(stderr, "randsym: %v\n", err)
		return exitUsage
	}

	srv := randsym.New(randsym.WithConfig(config), randsym.WithFileSystem(fs))
	if opts.diff {
		err = printDiffs(ctx, srv, opts.locations, stdout)
	} else {
		err = srv.ExpandAll(ctx, opts.locations, stdout)
	}
	if err != nil {
		errorf(stderr, "randsym: %v\n", err)
		return exitError
	}
	return exitOK
}

func printDiffs(ctx context.Context, srv *randsym.Service, locations []string, w io.Writer) error {
	added := color.New(color.FgGreen).FprintlnFunc()
	removed := color.New(color.FgRed).FprintlnFunc()
	hunk := color.New(color.FgCyan).FprintlnFunc()
	for _, location := range locations {
		sources, err := srv.Sources(ctx, location)
		if err != nil {
			return err
		}
		for _, source := range sources {
			patch, _, err := srv.Diff(ctx, source.URL)
			if err != nil {
				return err
			}
			for _, line := range strings.SplitAfter(patch, "\n") {
				if line == "" {
					continue
				}
				line = strings.TrimSuffix(line, "\n")
				switch {
				case strings.HasPrefix(line, "@@"):
					hunk(w, line)
				case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
					added(w, line)
				case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
					removed(w, line)
				default:
					fmt.Fprintln(w, line)
				}
			}
		}
	}
	return nil
}
