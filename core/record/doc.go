// Package record holds the value types shared by every stage of string
// resource reconciliation.
//
// A TextRecord is one named, translatable-or-not string entry. A Collection
// is an ordered list of records together with the path of the file they were
// read from.
package record
