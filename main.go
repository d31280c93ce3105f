package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/fd0/idfparse/internal/idf"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// RootCmd is the base command when no other command has been specified.
var RootCmd = &cobra.Command{
	Use:   "idfparse [flags] file",
	Short: "parse IDF building energy model files",
	Long: `
idfparse reads an IDF file as used by building energy simulation programs and
splits it into objects, grouped by object type. Field values are not
interpreted. Without a sub-command, a summary of the number of objects per
type is printed.
`,
	Example:           "$ idfparse in.idf",
	Args:              exactlyOneFile,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: parseConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Summary(args[0])
	},
}

func init() {
	RootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
}

// usageError is returned for invalid command lines.
type usageError struct {
	error
}

func exactlyOneFile(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return usageError{errors.New("no IDF file specified, nothing to do")}
	case len(args) > 1:
		return usageError{errors.New("more than one IDF file specified")}
	}

	return nil
}

// isParseFailure returns true for errors reading or parsing an input file.
func isParseFailure(err error) bool {
	var (
		perr *idf.Error
		aerr *idf.AccessError
	)

	return errors.As(err, &perr) || errors.As(err, &aerr)
}

var printFailure = color.New(color.FgHiRed, color.Bold).FprintfFunc()

// reportError prints err to w in the form appropriate for its kind.
func reportError(w io.Writer, cmd *cobra.Command, err error) {
	var uerr usageError
	switch {
	case errors.As(err, &uerr):
		fprintf(w, "error: %v\n\n", err)
		cmd.SetOut(w)
		_ = cmd.Usage()
	case isParseFailure(err):
		printFailure(w, "\n--- PARSE FAILED ---\n")
		fprintf(w, "%v\n", err)
	default:
		printFailure(w, "\n--- UNEXPECTED ERROR ---\n")
		fprintf(w, "An unexpected error occurred: %v\n", err)
	}
}

// run executes the command line args and returns the exit code.
func run(args []string, out, errOut io.Writer) int {
	stdout, stderr = out, errOut

	RootCmd.SetArgs(args)
	RootCmd.SetOut(out)
	RootCmd.SetErr(errOut)

	cmd, err := RootCmd.ExecuteC()
	if err != nil {
		reportError(errOut, cmd, err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
