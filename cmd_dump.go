package main

import (
	"encoding/json"
	"io"

	"github.com/alecthomas/repr"
	"github.com/fd0/idfparse/internal/idf"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var dumpCmd = &cobra.Command{
	Use:     "dump [flags] file",
	Example: "$ idfparse dump --format yaml --type zone in.idf",
	Short:   "Parse a file and write the objects in a machine readable format",
	Long: `
The dump command parses an IDF file and writes all objects, grouped by type in
the order the types first appear in the file. Supported formats are json,
yaml, idf (one object per line) and repr (Go syntax).
`,
	Args: exactlyOneFile,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		if len(dumpTypes) > 0 {
			doc = doc.Select(dumpTypes...)
		}

		return Dump(stdout, doc, dumpFormat)
	},
}

var (
	dumpFormat string
	dumpTypes  []string
)

func init() {
	RootCmd.AddCommand(dumpCmd)
	flags := dumpCmd.Flags()

	flags.StringVarP(&dumpFormat, "format", "f", "json", "output format (json, yaml, idf, repr)")
	presetFlag("format", flags.Lookup("format"))

	flags.StringSliceVarP(&dumpTypes, "type", "T", nil, "only write objects of this type (may be repeated)")
}

// Dump writes doc to w in the given format.
func Dump(w io.Writer, doc *idf.Document, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(doc), "json")
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "yaml")
		}
		return errors.Wrap(enc.Close(), "yaml")
	case "idf":
		return idf.Format(w, doc)
	case "repr":
		repr.New(w, repr.Indent("  ")).Println(doc.Map())
		return nil
	}

	return errors.Errorf("unknown output format %q", format)
}
