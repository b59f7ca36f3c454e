package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
)

// Options holds CLI options for oscpingpong.
type Options struct {
	ConfigPath string
	// ListenPort and SendPort are zero when not given on the command line.
	ListenPort uint16
	SendPort   uint16
}

var errUsage = errors.New("usage")

func printUsage(w io.Writer, name string) {
	fmt.Fprintf(w, "usage: %s [-config file] [<listenPort> <sendPort>]\n", name)
}

// ParseFlags parses CLI flags and the two optional positional ports.
func ParseFlags(name string, args []string, out io.Writer) (Options, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		printUsage(out, name)
		fs.PrintDefaults()
	}

	var opts Options
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to YAML config file")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch fs.NArg() {
	case 0:
		return opts, nil
	case 2:
	default:
		printUsage(out, name)
		return opts, errUsage
	}

	var err error
	if opts.ListenPort, err = parsePort(fs.Arg(0)); err != nil {
		printUsage(out, name)
		return opts, err
	}
	if opts.SendPort, err = parsePort(fs.Arg(1)); err != nil {
		printUsage(out, name)
		return opts, err
	}
	return opts, nil
}

func parsePort(s string) (uint16, error) {
	p, err := strconv.ParseUint(s, 10, 16)
	if err != nil || p == 0 {
		return 0, fmt.Errorf("invalid port %q", s)
	}
	return uint16(p), nil
}
