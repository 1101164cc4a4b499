package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/arnodel/jsontree"
	"github.com/c2h5oh/datasize"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {
	// Parse the command line arguments
	var filename string
	var indent int
	var compact bool
	var validate bool
	var maxSizeArg string
	var colorizer *jsontree.Colorizer

	if isatty.IsTerminal(os.Stdout.Fd()) {
		colorizer = &defaultColorizer
	}

	flag.BoolFunc("colors", "force using colors", func(s string) error {
		colorizer = &defaultColorizer
		return nil
	})
	flag.BoolFunc("nocolors", "disable colors", func(s string) error {
		colorizer = nil
		return nil
	})

	flag.StringVar(&filename, "file", "", "json input filename (stdin if omitted)")
	flag.IntVar(&indent, "indent", 2, "indent step for json output")
	flag.BoolVar(&compact, "compact", false, "output compact json on a single line")
	flag.BoolVar(&validate, "validate", false, "check the input is valid json, produce no output")
	flag.StringVar(&maxSizeArg, "maxsize", "100MB", "input size limit, e.g. 10MB")
	flag.Parse()

	var maxSize datasize.ByteSize
	if err := maxSize.UnmarshalText([]byte(maxSizeArg)); err != nil {
		fatalError("invalid -maxsize value %q: %s", maxSizeArg, err)
	}

	// Load and parse the input
	var value *jsontree.Value
	var err error
	if filename != "" {
		value, err = jsontree.ParseFileLimit(filename, maxSize)
	} else {
		var input []byte
		input, err = io.ReadAll(io.LimitReader(os.Stdin, int64(maxSize)+1))
		if err != nil {
			fatalError("unable to read input: %s", err)
		}
		if datasize.ByteSize(len(input)) > maxSize {
			fatalError("input larger than %s", maxSize.HumanReadable())
		}
		value, err = jsontree.Parse(input)
	}
	if err != nil {
		if validate {
			fmt.Fprintf(os.Stderr, "invalid: %s\n", err)
			os.Exit(1)
		}
		fatalError("error: %s", err)
	}
	if validate {
		return
	}

	// Set up stdout for handling colors
	var stdout io.Writer = os.Stdout
	if colorizer != nil {
		stdout = colorable.NewColorableStdout()
	}
	out := bufio.NewWriter(stdout)
	defer out.Flush()

	pretty := !compact
	indentSize := indent
	if compact {
		indentSize = -1
	}
	printer := &jsontree.DefaultPrinter{
		Writer:     out,
		IndentSize: indentSize,
	}

	// If we are writing to a terminal, flush after each line so user
	// gets feedback early.
	if isatty.IsTerminal(os.Stdout.Fd()) {
		printer.Flusher = out
	}

	encoder := &jsontree.Encoder{
		Printer:   printer,
		Colorizer: colorizer,
		Pretty:    pretty,
	}
	if err := encoder.Encode(value); err != nil {
		fatalError("error: %s", err)
	}
	if compact || value.Kind() != jsontree.Array && value.Kind() != jsontree.Object {
		fmt.Fprintln(out)
	}
}

func fatalError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
	os.Exit(1)
}

// Some color ANSI codes
var (
	reset      = []byte("\033[0m")
	yellow     = []byte("\033[33m")
	green      = []byte("\033[32m")
	white      = []byte("\033[37m")
	dimWhite   = []byte("\033[37;2m")
	brightBlue = []byte("\033[34;1m")
)

var defaultColorizer = jsontree.Colorizer{
	ScalarColorCodes: [4][]byte{dimWhite, yellow, white, green},
	KeyColorCode:     brightBlue,
	ResetCode:        reset,
}
