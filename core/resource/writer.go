package resource

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"l10n-manager/core/errs"
	"l10n-manager/core/record"
)

const (
	header      = `<?xml version="1.0" encoding="utf-8"?>` + "\n"
	indent      = "    "
	cdataOpen   = "<![CDATA["
	cdataClose  = "]]>"
	falseMarker = ` translatable="false"`
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\r", "&#xD;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "\n", "&#xA;", "\t", "&#x9;", "\r", "&#xD;")
)

// Write serializes records to w in order. Records that cannot be read back
// unchanged are rejected with a write error before anything is written.
func Write(w io.Writer, records []record.TextRecord) error {
	if err := Check(records); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	bw.WriteString(header)
	bw.WriteString("<resources>\n")
	for _, r := range records {
		bw.WriteString(indent)
		bw.WriteString(`<string name="`)
		bw.WriteString(attrEscaper.Replace(r.Name))
		bw.WriteString(`"`)
		if !r.Translatable {
			bw.WriteString(falseMarker)
		}
		bw.WriteString(">")
		writeValue(bw, r.Value)
		bw.WriteString("</string>\n")
	}
	bw.WriteString("</resources>\n")

	return bw.Flush()
}

// Check reports the first record holding text XML cannot carry: an invalid
// UTF-8 sequence, a character outside the XML 1.0 Char production, or a
// carriage return inside a literal block.
func Check(records []record.TextRecord) error {
	for _, r := range records {
		if err := checkText(r.Name); err != nil {
			return errs.Write("", fmt.Errorf("name of entry %q: %w", r.Name, err))
		}
		if err := checkText(r.Value); err != nil {
			return errs.Write("", fmt.Errorf("value of entry %q: %w", r.Name, err))
		}
		for _, seg := range literalSegments(r.Value) {
			if strings.ContainsRune(seg, '\r') {
				return errs.Write("", fmt.Errorf("value of entry %q: carriage return inside a literal block", r.Name))
			}
		}
	}
	return nil
}

func checkText(s string) error {
	for i := 0; i < len(s); {
		c, size := utf8.DecodeRuneInString(s[i:])
		if c == utf8.RuneError && size == 1 {
			return fmt.Errorf("invalid UTF-8 at byte %d", i)
		}
		if !isXMLChar(c) {
			return fmt.Errorf("character %U is not allowed in XML", c)
		}
		i += size
	}
	return nil
}

func isXMLChar(c rune) bool {
	return c == 0x09 || c == 0x0A || c == 0x0D ||
		c >= 0x20 && c <= 0xD7FF ||
		c >= 0xE000 && c <= 0xFFFD ||
		c >= 0x10000 && c <= 0x10FFFF
}

// literalSegments returns the complete <![CDATA[...]]> segments of value,
// the same ones writeValue emits verbatim.
func literalSegments(value string) []string {
	var out []string
	for value != "" {
		start := strings.Index(value, cdataOpen)
		if start < 0 {
			break
		}
		end := strings.Index(value[start+len(cdataOpen):], cdataClose)
		if end < 0 {
			break
		}
		end += start + len(cdataOpen) + len(cdataClose)
		out = append(out, value[start:end])
		value = value[end:]
	}
	return out
}

// writeValue emits complete <![CDATA[...]]> segments verbatim and escapes the rest.
func writeValue(bw *bufio.Writer, value string) {
	for value != "" {
		start := strings.Index(value, cdataOpen)
		if start < 0 {
			break
		}
		end := strings.Index(value[start+len(cdataOpen):], cdataClose)
		if end < 0 {
			break
		}
		end += start + len(cdataOpen) + len(cdataClose)

		bw.WriteString(textEscaper.Replace(value[:start]))
		bw.WriteString(value[start:end])
		value = value[end:]
	}
	bw.WriteString(textEscaper.Replace(value))
}

// Writer writes locale strings files of a Layout.
type Writer struct {
	layout Layout
}

// NewWriter creates a Writer.
func NewWriter(layout Layout) *Writer {
	return &Writer{layout: layout}
}

// WriteLocale replaces the strings file of locale with records and returns
// its path. The values directory is created when missing. Records rejected by
// Check leave the existing file untouched.
func (w *Writer) WriteLocale(locale string, records []record.TextRecord) (string, error) {
	path := w.layout.LocalePath(locale)
	if err := Check(records); err != nil {
		return path, errs.WithPath(err, path)
	}
	if err := os.MkdirAll(w.layout.LocaleDir(locale), 0o755); err != nil {
		return path, errs.Write(path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return path, errs.Write(path, err)
	}

	if err := Write(f, records); err != nil {
		f.Close()
		return path, errs.Write(path, err)
	}
	if err := f.Close(); err != nil {
		return path, errs.Write(path, err)
	}
	return path, nil
}
