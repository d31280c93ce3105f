package main

import (
	"io"

	"github.com/fatih/color"
	"github.com/fd0/idfparse/internal/idf"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show [flags] file",
	Example: "$ idfparse show --type material in.idf",
	Short:   "Parse and show the objects of a file",
	Long: `
The show command parses an IDF file and lists all objects grouped by type,
together with the line each object starts on.
`,
	Args: exactlyOneFile,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ShowObjects(args[0])
	},
}

var showTypes []string

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringSliceVarP(&showTypes, "type", "T", nil, "only show objects of this type (may be repeated)")
}

var (
	printText  = color.New(color.FgWhite).FprintfFunc()
	printType  = color.New(color.FgHiBlue, color.Bold).FprintfFunc()
	printField = color.New(color.FgHiRed).FprintfFunc()
)

// writeObjects lists all objects in doc, grouped by type.
func writeObjects(w io.Writer, doc *idf.Document) {
	doc.Each(func(key string, objs []idf.Object) {
		printType(w, "%s", key)
		printText(w, " (%d)\n", len(objs))

		for _, obj := range objs {
			printText(w, "  %5d  ", obj.Line)
			printType(w, "%s", obj.Type)
			for _, field := range obj.Fields {
				printText(w, ", ")
				printField(w, "%s", field)
			}
			printText(w, ";\n")
		}
	})
}

// ShowObjects visualises the objects of an IDF file.
func ShowObjects(filename string) error {
	doc, err := loadDocument(filename)
	if err != nil {
		return err
	}

	if len(showTypes) > 0 {
		doc = doc.Select(showTypes...)
	}

	writeObjects(stdout, doc)
	return nil
}
