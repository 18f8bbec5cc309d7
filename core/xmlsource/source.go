package xmlsource

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"

	"l10n-manager/core/dispatch"
	"l10n-manager/core/errs"
)

var cdataPrefix = []byte("<![CDATA[")

// Source tokenizes an in-memory XML document.
type Source struct {
	data     []byte
	dec      *xml.Decoder
	seenRoot bool
}

// New creates a Source over data.
func New(data []byte) *Source {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	dec.Entity = map[string]string{}
	return &Source{data: data, dec: dec}
}

// Next implements dispatch.Source.
func (s *Source) Next() (dispatch.Event, error) {
	for {
		offset := s.dec.InputOffset()
		tok, err := s.dec.Token()
		if errors.Is(err, io.EOF) {
			if !s.seenRoot {
				return dispatch.Event{}, errs.Syntax("document has no root element")
			}
			return dispatch.Event{}, io.EOF
		}
		if err != nil {
			return dispatch.Event{}, &errs.Error{Kind: errs.KindSyntax, Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			s.seenRoot = true
			return dispatch.Start(t.Name.Local, convertAttrs(t.Attr)...), nil
		case xml.EndElement:
			return dispatch.End(), nil
		case xml.CharData:
			raw := s.data[offset:s.dec.InputOffset()]
			if bytes.HasPrefix(raw, cdataPrefix) {
				return dispatch.Literal(string(t)), nil
			}
			return dispatch.Text(string(t)), nil
		}
	}
}

func convertAttrs(attrs []xml.Attr) []dispatch.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]dispatch.Attr, 0, len(attrs))
	for _, a := range attrs {
		name := a.Name.Local
		if a.Name.Space != "" {
			name = a.Name.Space + ":" + name
		}
		out = append(out, dispatch.Attr{Name: name, Value: a.Value})
	}
	return out
}
