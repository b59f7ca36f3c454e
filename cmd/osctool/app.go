package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chabad360/oscwire/internal/msgfile"
	"github.com/chabad360/oscwire/osc"
)

const usage = `usage: osctool <command> [-pad-blobs] [file]

commands:
  encode   read a YAML message and write its OSC encoding to stdout
  decode   read an OSC encoded message and write it as YAML to stdout
`

type command func(c osc.Codec, in io.Reader, out io.Writer) error

var commands = map[string]command{
	"encode": encode,
	"decode": decode,
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)
	defer func() { _ = logger.Sync() }()

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprint(stderr, usage)
		return 2
	}

	fs := flag.NewFlagSet("osctool "+args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	padBlobs := fs.Bool("pad-blobs", false, "Align blob payloads to 4 bytes")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	in, closeIn, err := openInput(fs.Arg(0), stdin)
	if err != nil {
		logger.Error("open input", zap.Error(err))
		return 1
	}
	defer closeIn()

	out := bufio.NewWriter(stdout)
	if err := cmd(osc.Codec{PadBlobs: *padBlobs}, in, out); err != nil {
		logger.Error(args[0]+" failed", zap.Error(err))
		return 1
	}
	if err := out.Flush(); err != nil {
		logger.Error("write output", zap.Error(err))
		return 1
	}
	return 0
}

func encode(c osc.Codec, in io.Reader, out io.Writer) error {
	m, err := msgfile.Read(in)
	if err != nil {
		return err
	}
	return c.Encode(out, m)
}

func decode(c osc.Codec, in io.Reader, out io.Writer) error {
	br := bufio.NewReader(in)
	m, err := c.Decode(br)
	if err != nil {
		return err
	}
	switch _, err := br.Peek(1); {
	case err == nil:
		return errors.New("trailing data after message")
	case !errors.Is(err, io.EOF):
		return err
	}
	return msgfile.Write(out, m)
}

func openInput(name string, stdin io.Reader) (io.Reader, func(), error) {
	if name == "" || name == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func newLogger(w io.Writer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zap.InfoLevel)
	return zap.New(core)
}
