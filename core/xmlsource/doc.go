// Package xmlsource adapts encoding/xml to the dispatch.Source interface.
//
// Character data is reported as dispatch.KindText, CDATA sections as
// dispatch.KindLiteral. Comments, processing instructions and directives are
// dropped. Custom entity expansion is disabled.
package xmlsource
