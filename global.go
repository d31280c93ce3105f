package main

import (
	"fmt"
	"io"
	"os"
)

// version is set with -ldflags "-X main.version=..." for releases.
var version string

var (
	verboseOutput bool
	debugOutput   bool
	writeTables   bool
	noColor       bool
	encoding      string
)

// output streams, replaced in tests
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func init() {
	flags := RootCmd.PersistentFlags()

	flags.BoolVarP(&verboseOutput, "verbose", "v", false, "be verbose")
	presetFlag("verbose", flags.Lookup("verbose"))

	flags.BoolVarP(&debugOutput, "debug", "d", false, "print lexer and parser diagnostics")
	flags.BoolVarP(&writeTables, "tables", "t", false, "write parser tables (accepted for compatibility, the grammar is compiled in)")
	flags.BoolVar(&noColor, "no-color", false, "disable coloured output")

	flags.StringVarP(&encoding, "encoding", "e", "utf-8", "character encoding of the input file")
	presetFlag("encoding", flags.Lookup("encoding"))
}

func fprintf(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}

// logf writes a diagnostic message to stderr if enabled is set.
func logf(enabled bool, format string, args ...interface{}) {
	if enabled {
		fprintf(stderr, format, args...)
	}
}

// V prints progress messages requested with --verbose.
func V(format string, args ...interface{}) {
	logf(verboseOutput, format, args...)
}

// D prints lexer, parser and config diagnostics requested with --debug.
func D(format string, args ...interface{}) {
	logf(debugOutput, format, args...)
}
