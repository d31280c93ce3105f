package idf

import "strings"

// Object is one parsed IDF object: its type name as written in the input,
// the field values in input order and the line the type name was found on.
type Object struct {
	Type   string
	Fields []string
	Line   int
}

// Strings returns the object as a list of strings, the type name first.
func (o Object) Strings() []string {
	s := make([]string, 0, len(o.Fields)+1)
	s = append(s, o.Type)
	return append(s, o.Fields...)
}

// Key returns the name the object is grouped under in a Document.
func (o Object) Key() string {
	return strings.ToUpper(o.Type)
}

// String formats the object in canonical IDF syntax, e.g. "Zone, Kitchen, 15;".
func (o Object) String() string {
	return strings.Join(o.Strings(), ", ") + ";"
}
