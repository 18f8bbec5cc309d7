package checks

import (
	"bytes"
	"os"

	"l10n-manager/core/errs"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Severity ranks an issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single finding about one entry.
type Issue struct {
	Name     string   `json:"name,omitempty"`
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

var (
	rootExpr     = xpath.MustCompile("/resources")
	entryExpr    = xpath.MustCompile("/resources/string")
	namedExpr    = xpath.MustCompile("/resources/string[@name]")
	unnamedExpr  = xpath.MustCompile("/resources/string[not(@name)]")
	localizeExpr = xpath.MustCompile("/resources/string[@name and not(@translatable='false')]")
)

// Document is a parsed strings file.
type Document struct {
	Path string
	root *xmlquery.Node
}

// Parse parses data as a strings document.
func Parse(data []byte, path string) (*Document, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errs.WithPath(errs.Syntax("%v", err), path)
	}
	if xmlquery.QuerySelector(root, rootExpr) == nil {
		return nil, errs.WithPath(errs.Syntax("document element is not <resources>"), path)
	}
	return &Document{Path: path, root: root}, nil
}

// Load reads and parses the strings file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Resource(path, err)
	}
	return Parse(data, path)
}

// entries returns the named entries in document order.
func (d *Document) entries() []*xmlquery.Node {
	return xmlquery.QuerySelectorAll(d.root, namedExpr)
}

// values maps the name of every entry matched by expr to its text.
func (d *Document) values(expr *xpath.Expr) map[string]string {
	out := make(map[string]string)
	for _, n := range xmlquery.QuerySelectorAll(d.root, expr) {
		out[n.SelectAttr("name")] = n.InnerText()
	}
	return out
}

// Len is the number of <string> elements.
func (d *Document) Len() int {
	return len(xmlquery.QuerySelectorAll(d.root, entryExpr))
}
