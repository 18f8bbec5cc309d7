package checks

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Rule names.
const (
	RuleMissingName         = "missing-name"
	RuleDuplicateName       = "duplicate-name"
	RuleUnescapedApostrophe = "unescaped-apostrophe"
	RuleMissingTranslation  = "missing-translation"
	RuleExtraName           = "extra-name"
	RuleFormatMismatch      = "format-mismatch"
)

var formatSpec = regexp.MustCompile(`%(?:\d+\$)?[-#+ 0,(]*\d*(?:\.\d+)?([a-zA-Z%])`)

// MissingName reports <string> elements without a name attribute.
func MissingName(doc *Document) []Issue {
	var issues []Issue
	for range xmlquery.QuerySelectorAll(doc.root, unnamedExpr) {
		issues = append(issues, Issue{
			Rule:     RuleMissingName,
			Severity: SeverityError,
			Message:  "string element has no name attribute",
		})
	}
	return issues
}

// DuplicateName reports every repeated entry name once.
func DuplicateName(doc *Document) []Issue {
	counts := make(map[string]int)
	var order []string
	for _, n := range doc.entries() {
		name := n.SelectAttr("name")
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}

	var issues []Issue
	for _, name := range order {
		if counts[name] > 1 {
			issues = append(issues, Issue{
				Name:     name,
				Rule:     RuleDuplicateName,
				Severity: SeverityError,
				Message:  fmt.Sprintf("name is defined %d times", counts[name]),
			})
		}
	}
	return issues
}

// UnescapedApostrophe reports apostrophes that are neither backslash escaped,
// inside a CDATA block, nor inside a double quoted value.
func UnescapedApostrophe(doc *Document) []Issue {
	var issues []Issue
	for _, n := range doc.entries() {
		if quoted(n.InnerText()) {
			continue
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == xmlquery.TextNode && hasBareApostrophe(c.Data) {
				issues = append(issues, Issue{
					Name:     n.SelectAttr("name"),
					Rule:     RuleUnescapedApostrophe,
					Severity: SeverityError,
					Message:  `apostrophe must be escaped as \'`,
				})
				break
			}
		}
	}
	return issues
}

func quoted(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

func hasBareApostrophe(s string) bool {
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '\'':
			return true
		}
	}
	return false
}

// MissingTranslation reports translatable canonical entries absent from locale.
func MissingTranslation(canonical, locale *Document) []Issue {
	have := locale.values(namedExpr)
	var issues []Issue
	for _, n := range xmlquery.QuerySelectorAll(canonical.root, localizeExpr) {
		name := n.SelectAttr("name")
		if _, ok := have[name]; !ok {
			issues = append(issues, Issue{
				Name:     name,
				Rule:     RuleMissingTranslation,
				Severity: SeverityWarning,
				Message:  "entry is not translated",
			})
		}
	}
	return issues
}

// ExtraName reports locale entries with no canonical counterpart.
func ExtraName(canonical, locale *Document) []Issue {
	known := canonical.values(namedExpr)
	var issues []Issue
	for _, n := range locale.entries() {
		name := n.SelectAttr("name")
		if _, ok := known[name]; !ok {
			issues = append(issues, Issue{
				Name:     name,
				Rule:     RuleExtraName,
				Severity: SeverityWarning,
				Message:  "entry does not exist in the default strings file",
			})
		}
	}
	return issues
}

// FormatMismatch reports translations whose format specifiers differ from the
// canonical text.
func FormatMismatch(canonical, locale *Document) []Issue {
	want := canonical.values(localizeExpr)
	var issues []Issue
	for _, n := range locale.entries() {
		name := n.SelectAttr("name")
		original, ok := want[name]
		if !ok {
			continue
		}
		expected, got := specifiers(original), specifiers(n.InnerText())
		if !slices.Equal(expected, got) {
			issues = append(issues, Issue{
				Name:     name,
				Rule:     RuleFormatMismatch,
				Severity: SeverityError,
				Message:  fmt.Sprintf("format specifiers %v do not match %v", got, expected),
			})
		}
	}
	return issues
}

// specifiers returns the sorted conversions of s, ignoring %%.
func specifiers(s string) []string {
	var out []string
	for _, m := range formatSpec.FindAllStringSubmatch(s, -1) {
		if m[1] == "%" {
			continue
		}
		out = append(out, m[0])
	}
	slices.Sort(out)
	return out
}
