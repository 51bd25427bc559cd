package dom

import (
	"strings"

	"github.com/aymerick/douceur/parser"
)

// NormalizeStyle parses a list of CSS declarations, as found in an inline
// style attribute, and returns it in canonical form:
//
//    "color:red ;  MARGIN: 0 auto"   =>   "color: red; margin: 0 auto;"
//
// Declarations are kept in order; for repeated properties the last one wins,
// as it would in a browser. If decls cannot be parsed, it is returned trimmed
// and false is reported.
func NormalizeStyle(decls string) (string, bool) {
	decls = strings.TrimSpace(decls)
	if decls == "" {
		return "", true
	}
	if !strings.HasSuffix(decls, ";") {
		decls += ";" // the parser drops the value of an unterminated declaration
	}
	parsed, err := parser.ParseDeclarations(decls)
	if err != nil {
		tracer().Infof("cannot parse style %q: %v", decls, err)
		return strings.TrimSuffix(decls, ";"), false
	}
	last := make(map[string]int, len(parsed))
	for i, d := range parsed {
		last[strings.ToLower(d.Property)] = i
	}
	var b strings.Builder
	for i, d := range parsed {
		prop := strings.ToLower(d.Property)
		if prop == "" || last[prop] != i {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(prop)
		b.WriteString(": ")
		b.WriteString(d.Value)
		if d.Important {
			b.WriteString(" !important")
		}
		b.WriteByte(';')
	}
	return b.String(), true
}
