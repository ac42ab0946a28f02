package gen

import (
	"go/token"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

var (
	rules    = ruleset()
	acronyms = make(map[string]struct{})
)

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	for _, w := range []string{
		"ACL", "API", "ASCII", "CPU", "CSS", "DNS", "EOF", "GUID", "HTML",
		"HTTP", "HTTPS", "ID", "IP", "JSON", "LHS", "QPS", "RAM", "RHS",
		"RPC", "SLA", "SMTP", "SQL", "SSH", "TCP", "TLS", "TTL", "UDP",
		"UI", "UID", "URI", "URL", "UTF8", "UUID", "VM", "XML", "XSS",
	} {
		acronyms[w] = struct{}{}
		rules.AddAcronym(w)
	}
	return rules
}

// pascal converts a snake_case name to PascalCase (e.g. "api_key" -> "APIKey").
func pascal(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	for i, w := range words {
		upper := strings.ToUpper(w)
		if _, ok := acronyms[upper]; ok {
			words[i] = upper
			continue
		}
		words[i] = rules.Capitalize(w)
	}
	return strings.Join(words, "")
}

// camel converts a snake_case name to camelCase (e.g. "api_key" -> "apiKey").
func camel(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	if len(words) == 0 {
		return s
	}
	out := strings.ToLower(words[0])
	return out + pascal(strings.Join(words[1:], "_"))
}

// snake converts a PascalCase/camelCase name to snake_case, used for
// generated file names (e.g. "HTTPConfig" -> "http_config").
func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			// Keep acronym runs together: insert an underscore only at
			// a lower-to-upper or upper-to-lower boundary.
			if i > 0 && (!unicode.IsUpper(rune(s[i-1])) ||
				(i+1 < len(s) && unicode.IsLower(rune(s[i+1])))) {
				b.WriteRune('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// lowerFirst downcases the leading rune, used for unexported generation.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// upperFirst upcases the leading rune.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// builderField returns the storage field for the given name and ensures
// it doesn't collide with Go keywords and is not exported.
func builderField(name string) string {
	f := camel(name)
	if token.Lookup(f).IsKeyword() || strings.ToUpper(f[:1]) == f[:1] {
		return "_" + f
	}
	return f
}

// validIdent reports whether the given name is usable as a Go identifier.
func validIdent(name string) bool {
	return token.IsIdentifier(name)
}
