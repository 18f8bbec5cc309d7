package record

// TextRecord is a single string resource entry.
type TextRecord struct {
	// Name identifies the entry within one resource file.
	Name string `json:"name"`
	// Value is the entry text. Literal blocks keep their <![CDATA[...]]> markers.
	Value string `json:"value"`
	// Translatable is false only when the source declared translatable="false".
	Translatable bool `json:"translatable"`
}

// New creates a TextRecord.
func New(name, value string, translatable bool) TextRecord {
	return TextRecord{Name: name, Value: value, Translatable: translatable}
}

// Collection is an ordered list of records read from Path.
type Collection struct {
	Path    string       `json:"path"`
	Records []TextRecord `json:"records"`
}

// Names returns the entry names in collection order.
func (c Collection) Names() []string {
	names := make([]string, 0, len(c.Records))
	for _, r := range c.Records {
		names = append(names, r.Name)
	}
	return names
}

// Index maps entry names to records. When a name occurs more than once the
// last occurrence wins.
func Index(records []TextRecord) map[string]TextRecord {
	idx := make(map[string]TextRecord, len(records))
	for _, r := range records {
		idx[r.Name] = r
	}
	return idx
}
