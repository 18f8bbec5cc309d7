// Package errs defines the closed set of failures produced while reading,
// reconciling and writing string resources.
//
// # Kinds
//
//   - Syntax: a resource file is not well-formed or an entry lacks its name.
//   - Resource: a file could not be opened or read.
//   - Argument: the caller supplied an unusable argument (e.g. an empty locale mapping).
//   - ImportFormat: a translation import row is malformed.
//   - Write: a locale output file could not be written.
//
// Every error carries the path of the file it was raised for when one is known,
// so a failure can always be attributed to a specific resource.
//
// # Usage
//
//	if errs.IsKind(err, errs.KindArgument) {
//	    cmd.Usage()
//	}
package errs
