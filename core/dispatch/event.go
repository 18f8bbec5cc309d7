package dispatch

import "io"

// Kind is the type of a markup event.
type Kind int

const (
	// KindStart opens an element. Tag and Attrs are set.
	KindStart Kind = iota
	// KindEnd closes the most recently opened element.
	KindEnd
	// KindText carries a run of ordinary character data in Text.
	KindText
	// KindLiteral carries the raw content of a literal block in Text.
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	case KindText:
		return "text"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Attr is an element attribute.
type Attr struct {
	Name  string
	Value string
}

// Event is one structural event.
type Event struct {
	Kind  Kind
	Tag   string
	Attrs []Attr
	Text  string
}

// Start builds a start event.
func Start(tag string, attrs ...Attr) Event {
	return Event{Kind: KindStart, Tag: tag, Attrs: attrs}
}

// End builds an end event.
func End() Event {
	return Event{Kind: KindEnd}
}

// Text builds a character data event.
func Text(run string) Event {
	return Event{Kind: KindText, Text: run}
}

// Literal builds a literal block event.
func Literal(run string) Event {
	return Event{Kind: KindLiteral, Text: run}
}

// Source produces events in document order. Next returns io.EOF once the
// input is exhausted.
type Source interface {
	Next() (Event, error)
}

// SliceSource replays a fixed list of events.
type SliceSource struct {
	events []Event
	pos    int
}

// NewSliceSource creates a Source over events.
func NewSliceSource(events ...Event) *SliceSource {
	return &SliceSource{events: events}
}

// Next implements Source.
func (s *SliceSource) Next() (Event, error) {
	if s.pos >= len(s.events) {
		return Event{}, io.EOF
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

func lookupAttr(attrs []Attr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}
