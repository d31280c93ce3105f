// Package idf parses the text format of building energy model input files
// (IDF). A file is a list of objects, each a type name followed by comma
// separated field values and terminated by a semicolon:
//
//	! a comment
//	Zone,
//	    Kitchen,    !- Name
//	    15;         !- Floor Area
//
// Field values are never interpreted, they are returned as strings with
// surrounding whitespace removed. Objects are grouped by upper-cased type
// name into a Document.
package idf
