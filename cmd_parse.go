package main

import (
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/fd0/idfparse/internal/idf"
)

// loadDocument reads and parses an IDF file.
func loadDocument(filename string) (*idf.Document, error) {
	V("reading %v (encoding %v)\n", filename, encoding)

	var opts []idf.Option
	if debugOutput {
		opts = append(opts, idf.Trace(D))
	}

	doc, err := idf.ParseFile(filename, encoding, opts...)
	if err != nil {
		return nil, err
	}

	V("parsed %d objects of %d types\n", doc.Count(), doc.Len())
	return doc, nil
}

var printHeading = color.New(color.FgHiGreen, color.Bold).FprintfFunc()

// writeSummary prints the number of objects per type, sorted by type name.
func writeSummary(w io.Writer, doc *idf.Document) {
	printHeading(w, "\n--- Parse Successful ---\n")
	fprintf(w, "Total objects parsed: %d\n", doc.Count())
	fprintf(w, "Object counts by type:\n")

	types := doc.Types()
	sort.Strings(types)

	for _, typ := range types {
		fprintf(w, "  %-30s: %d\n", typ, len(doc.Objects(typ)))
	}
}

// Summary parses the file and prints a summary of the objects found.
func Summary(filename string) error {
	fprintf(stdout, "Parsing file: %v...\n", filename)

	doc, err := loadDocument(filename)
	if err != nil {
		return err
	}

	writeSummary(stdout, doc)
	return nil
}
