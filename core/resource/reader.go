package resource

import (
	"io"
	"os"

	"l10n-manager/core/dispatch"
	"l10n-manager/core/errs"
	"l10n-manager/core/record"
	"l10n-manager/core/xmlsource"
)

// Read parses a strings document from r. path is only used to attribute errors.
func Read(r io.Reader, path string) (record.Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return record.Collection{}, errs.Resource(path, err)
	}
	return parse(data, path)
}

// ReadFile parses the strings file at path.
func ReadFile(path string) (record.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return record.Collection{}, errs.Resource(path, err)
	}
	return parse(data, path)
}

func parse(data []byte, path string) (record.Collection, error) {
	records, err := dispatch.Run(xmlsource.New(data))
	if err != nil {
		return record.Collection{}, errs.WithPath(err, path)
	}
	return record.Collection{Path: path, Records: records}, nil
}

// Reader reads the strings files of a Layout.
type Reader struct {
	layout Layout
}

// NewReader creates a Reader.
func NewReader(layout Layout) *Reader {
	return &Reader{layout: layout}
}

// Layout returns the layout the reader resolves paths with.
func (r *Reader) Layout() Layout {
	return r.layout
}

// ReadDefault reads the canonical strings file.
func (r *Reader) ReadDefault() (record.Collection, error) {
	return ReadFile(r.layout.DefaultPath())
}

// ReadLocale reads the strings file of locale.
func (r *Reader) ReadLocale(locale string) (record.Collection, error) {
	return ReadFile(r.layout.LocalePath(locale))
}
