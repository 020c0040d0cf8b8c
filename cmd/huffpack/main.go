package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffpack"
)

const progName = "huffpack"
const usageMessageRaw = `
Usage: huffpack [-d] [-i FILE] [-o FILE] [-v] [-dump]

Compresses (or with -d, decompresses) FILE or standard input, writing the
result to FILE or standard output.

Options:
`

var (
	flagDecode  = flag.Bool("d", false, "decode instead of encode")
	flagInput   = flag.String("i", "", "read from `FILE` instead of standard input")
	flagOutput  = flag.String("o", "", "write to `FILE` instead of standard output")
	flagVerbose = flag.Bool("v", false, "log progress to standard error")
	flagDump    = flag.Bool("dump", false, "print the code table to standard error when encoding")
)

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	flag.PrintDefaults()
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

func setupLogging(verbose bool) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.WARNING, "")
	}
	logging.SetBackend(leveled)
}

func openOutput() (io.Writer, func() error, error) {
	if *flagOutput == "" {
		bw := bufio.NewWriter(os.Stdout)
		return bw, bw.Flush, nil
	}
	f, err := os.Create(*flagOutput)
	if err != nil {
		return nil, nil, err
	}
	bw := bufio.NewWriter(f)
	finish := func() error {
		err := bw.Flush()
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		return err
	}
	return bw, finish, nil
}

func encode(w io.Writer) error {
	var src huffpack.Source
	if *flagInput != "" {
		src = huffpack.FileSource(*flagInput)
	} else {
		buffered, err := huffpack.BufferSource(os.Stdin)
		if err != nil {
			return err
		}
		src = buffered
	}

	e, err := huffpack.NewEncoder(src)
	if err != nil {
		return err
	}
	if *flagDump {
		if _, err := e.Table().Dump(os.Stderr); err != nil {
			return err
		}
	}
	return e.EncodeTo(w)
}

func decode(w io.Writer) error {
	var r io.Reader = os.Stdin
	if *flagInput != "" {
		f, err := os.Open(*flagInput)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	return huffpack.Decode(bufio.NewReader(r), w)
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageMessage())
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		usageErrorf("unexpected argument %q", flag.Arg(0))
	}
	if *flagDecode && *flagDump {
		usageErrorf("-dump only applies when encoding")
	}

	setupLogging(*flagVerbose)

	w, finish, err := openOutput()
	if err != nil {
		exitError(err)
	}

	if *flagDecode {
		err = decode(w)
	} else {
		err = encode(w)
	}
	if finishErr := finish(); err == nil {
		err = finishErr
	}
	if err != nil {
		exitError(err)
	}
}
