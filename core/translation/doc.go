// Package translation reads and writes translation import files and parses
// locale mappings.
//
// An import file is CSV, one row per translated text:
//
//	s1, english value 1, french new value 1
//
// With three columns the first one is an identifier hint, with two columns
// only the original and translated text are given. An optional header row
// "name,default,translation" is skipped. Any row with a different field
// count than the first is rejected and the whole file fails.
//
// A locale mapping pairs the human friendly name of an import file with
// the locale identifier of its values directory, e.g. french=fr.
package translation
