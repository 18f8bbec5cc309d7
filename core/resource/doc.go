// Package resource reads and writes Android strings.xml files.
//
// # Layout
//
// A resource directory holds the canonical entries in values/strings.xml and
// one values-<locale>/strings.xml per translated locale. Layout resolves those
// paths; it never touches the file system.
//
// # Reading
//
// Read streams a document through dispatch.Run and returns a
// record.Collection tagged with the file path. Access failures are
// resource errors, malformed documents are syntax errors; both carry the path
// and neither returns a partial collection.
//
// # Writing
//
// Write emits the canonical document shape:
//
//	<?xml version="1.0" encoding="utf-8"?>
//	<resources>
//	    <string name="s1">value</string>
//	    <string name="s2" translatable="false">value</string>
//	</resources>
//
// Literal blocks kept in a value as <![CDATA[...]]> are written back verbatim,
// all other text is escaped. WriteLocale truncates the target file before
// writing.
package resource
