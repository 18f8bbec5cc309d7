package dispatch

import (
	"strings"

	"l10n-manager/core/errs"
	"l10n-manager/core/record"
)

const (
	// ContainerTag is the document element holding the entries.
	ContainerTag = "resources"
	// EntryTag is the element of a single string entry.
	EntryTag = "string"
	// NameAttr names an entry.
	NameAttr = "name"
	// TranslatableAttr marks an entry as translatable or not.
	TranslatableAttr = "translatable"

	literalOpen  = "<![CDATA["
	literalClose = "]]>"
)

// Handler receives the events addressed to one element.
type Handler interface {
	// Child returns the handler for a nested element.
	Child(tag string, attrs []Attr) (Handler, error)
	// Text receives a character data run.
	Text(run string)
	// Literal receives the raw content of a literal block.
	Literal(run string)
	// Finish is called when the element closes. It reports the record
	// the handler built, if any.
	Finish() (record.TextRecord, bool)
}

type rootHandler struct{}

func (rootHandler) Child(tag string, _ []Attr) (Handler, error) {
	if tag == ContainerTag {
		return containerHandler{}, nil
	}
	return IgnoringHandler{}, nil
}

func (rootHandler) Text(string)    {}
func (rootHandler) Literal(string) {}

func (rootHandler) Finish() (record.TextRecord, bool) {
	return record.TextRecord{}, false
}

type containerHandler struct{}

func (containerHandler) Child(tag string, attrs []Attr) (Handler, error) {
	if tag == EntryTag {
		h, err := NewEntryHandler(attrs)
		if err != nil {
			return nil, err
		}
		return h, nil
	}
	return IgnoringHandler{}, nil
}

func (containerHandler) Text(string)    {}
func (containerHandler) Literal(string) {}

func (containerHandler) Finish() (record.TextRecord, bool) {
	return record.TextRecord{}, false
}

// EntryHandler collects the value of a single <string> element.
type EntryHandler struct {
	name         string
	translatable bool
	value        strings.Builder
}

// NewEntryHandler validates the entry attributes. A missing name is a syntax
// error. Only the exact value "false" makes an entry non-translatable.
func NewEntryHandler(attrs []Attr) (*EntryHandler, error) {
	name, ok := lookupAttr(attrs, NameAttr)
	if !ok {
		return nil, errs.MissingAttribute(EntryTag, NameAttr)
	}
	tr, _ := lookupAttr(attrs, TranslatableAttr)
	return &EntryHandler{name: name, translatable: tr != "false"}, nil
}

// Child ignores markup nested inside an entry.
func (h *EntryHandler) Child(string, []Attr) (Handler, error) {
	return IgnoringHandler{}, nil
}

func (h *EntryHandler) Text(run string) {
	h.value.WriteString(run)
}

// Literal appends run wrapped in its literal block markers so the block
// survives a write.
func (h *EntryHandler) Literal(run string) {
	h.value.WriteString(literalOpen)
	h.value.WriteString(run)
	h.value.WriteString(literalClose)
}

// Finish always yields a record; an entry without content has an empty value.
func (h *EntryHandler) Finish() (record.TextRecord, bool) {
	return record.New(h.name, h.value.String(), h.translatable), true
}

// IgnoringHandler discards an element and everything below it.
type IgnoringHandler struct{}

func (IgnoringHandler) Child(string, []Attr) (Handler, error) {
	return IgnoringHandler{}, nil
}

func (IgnoringHandler) Text(string)    {}
func (IgnoringHandler) Literal(string) {}

func (IgnoringHandler) Finish() (record.TextRecord, bool) {
	return record.TextRecord{}, false
}
