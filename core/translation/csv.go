package translation

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"slices"

	"l10n-manager/core/errs"
)

// Header is the first row written by WriteRows.
var Header = []string{"name", "default", "translation"}

// Row is one translated text from an import file.
type Row struct {
	// Hint is the optional identifier column. It is informational only.
	Hint string `json:"hint,omitempty"`
	// Original is the canonical text the translation was made from.
	Original string `json:"original"`
	// Translated is the translated text.
	Translated string `json:"translated"`
	// Line is the 1-based line the row started on.
	Line int `json:"line"`
}

// ReadRows parses an import file. path is only used to attribute errors.
func ReadRows(r io.Reader, path string) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = 0

	var rows []Row
	first := true
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.StartLine
				err = pe.Err
			}
			return nil, errs.ImportFormat(path, line, "malformed row", err)
		}

		line, _ := cr.FieldPos(0)
		if first {
			first = false
			if len(fields) < 2 || len(fields) > 3 {
				return nil, errs.ImportFormat(path, line, "expected 2 or 3 fields per row", nil)
			}
			if isHeader(fields) {
				continue
			}
		}

		row := Row{Line: line}
		if len(fields) == 3 {
			row.Hint, row.Original, row.Translated = fields[0], fields[1], fields[2]
		} else {
			row.Original, row.Translated = fields[0], fields[1]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadRowsFile parses the import file at path.
func ReadRowsFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Resource(path, err)
	}
	defer f.Close()
	return ReadRows(f, path)
}

// isHeader reports whether fields is exactly the Header row. Leading spaces
// are already trimmed by the reader.
func isHeader(fields []string) bool {
	return slices.Equal(fields, Header)
}

// WriteRows writes rows in the three column format, header first.
func WriteRows(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Hint, r.Original, r.Translated}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
