// Package dispatch turns a stream of markup events into string resource records.
//
// A Dispatcher keeps an explicit stack of Handlers, seeded with a root handler
// that can never be popped. Every start event asks the handler on top of the
// stack for a child handler and pushes it; every end event pops the top and,
// when that handler produced a record, appends it to the output. Text and
// literal-block runs only ever reach the handler on top of the stack.
//
// # Handlers
//
//   - root: accepts the <resources> container and ignores any other document element.
//   - container: turns each <string> child into an EntryHandler and ignores everything else.
//   - EntryHandler: accumulates the text of one entry.
//   - IgnoringHandler: swallows an unknown subtree of any depth.
//
// # Usage
//
//	records, err := dispatch.Run(xmlsource.New(data))
package dispatch
