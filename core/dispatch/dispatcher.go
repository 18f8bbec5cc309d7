package dispatch

import (
	"errors"
	"io"

	"l10n-manager/core/errs"
	"l10n-manager/core/record"
)

// Dispatcher routes events to the handler stack and collects finished records.
type Dispatcher struct {
	stack   []Handler
	records []record.TextRecord
}

// New creates a Dispatcher whose stack holds only the root handler.
func New() *Dispatcher {
	return &Dispatcher{stack: []Handler{rootHandler{}}}
}

// Depth returns the number of handlers on the stack, root included.
func (d *Dispatcher) Depth() int {
	return len(d.stack)
}

// Records returns the records finished so far, in end-event order.
func (d *Dispatcher) Records() []record.TextRecord {
	return d.records
}

func (d *Dispatcher) top() Handler {
	return d.stack[len(d.stack)-1]
}

// Start pushes the handler the current top returns for tag.
func (d *Dispatcher) Start(tag string, attrs []Attr) error {
	child, err := d.top().Child(tag, attrs)
	if err != nil {
		return err
	}
	d.stack = append(d.stack, child)
	return nil
}

// End pops the top handler. Popping the root handler is a syntax error.
func (d *Dispatcher) End() error {
	if len(d.stack) == 1 {
		return errs.Syntax("end element without matching start")
	}
	h := d.top()
	d.stack = d.stack[:len(d.stack)-1]
	if rec, ok := h.Finish(); ok {
		d.records = append(d.records, rec)
	}
	return nil
}

// Text delivers a character data run to the top handler.
func (d *Dispatcher) Text(run string) {
	d.top().Text(run)
}

// Literal delivers a literal block to the top handler.
func (d *Dispatcher) Literal(run string) {
	d.top().Literal(run)
}

// Dispatch routes a single event.
func (d *Dispatcher) Dispatch(ev Event) error {
	switch ev.Kind {
	case KindStart:
		return d.Start(ev.Tag, ev.Attrs)
	case KindEnd:
		return d.End()
	case KindText:
		d.Text(ev.Text)
	case KindLiteral:
		d.Literal(ev.Text)
	default:
		return errs.Syntax("unknown event kind %d", int(ev.Kind))
	}
	return nil
}

// Run drains src through a fresh Dispatcher. On any failure no records are
// returned.
func Run(src Source) ([]record.TextRecord, error) {
	d := New()
	for {
		ev, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := d.Dispatch(ev); err != nil {
			return nil, err
		}
	}
	if d.Depth() != 1 {
		return nil, errs.Syntax("unexpected end of input with %d unclosed element(s)", d.Depth()-1)
	}
	return d.Records(), nil
}
