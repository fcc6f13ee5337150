package primitive

import "sort"

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is an abstract primitive kind of the schema language.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as the "not a primitive" value for Kind

	KindBoolean
	KindInteger
	KindFloat
	KindLong
	KindString
	KindEmail
	KindPhoneNumber
	KindURL
	KindDate
	KindBinary
)

// symbols maps every schema symbol that names a primitive to its kind.
// Several symbols may share a kind (e.g. "int" and "integer").
var symbols = map[string]Kind{
	"bool":         KindBoolean,
	"boolean":      KindBoolean,
	"int":          KindInteger,
	"integer":      KindInteger,
	"float":        KindFloat,
	"long":         KindLong,
	"long_integer": KindLong,
	"string":       KindString,
	"email":        KindEmail,
	"phone_number": KindPhoneNumber,
	"url":          KindURL,
	"date":         KindDate,
	"binary":       KindBinary,
}

// Lookup returns the kind named by symbol. The second result is false
// for anything outside the table; such symbols are user-defined types.
func Lookup(symbol string) (Kind, bool) {
	k, ok := symbols[symbol]
	return k, ok
}

// IsPrimitive reports whether symbol names a primitive kind.
func IsPrimitive(symbol string) bool {
	_, ok := symbols[symbol]
	return ok
}

// Symbols returns all recognized primitive symbols, sorted.
func Symbols() []string {
	out := make([]string, 0, len(symbols))
	for s := range symbols {
		out = append(out, s)
	}

	sort.Strings(out)

	return out
}

// JavaType returns the default Java type text for the kind.
func (k Kind) JavaType() string {
	switch k {
	case KindBoolean:
		return "Boolean"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindLong:
		return "Long"
	case KindString, KindEmail, KindPhoneNumber:
		return "String"
	case KindURL:
		return "URL"
	case KindDate:
		return "org.joda.time.DateTime"
	case KindBinary:
		return "byte[]"
	default:
		return ""
	}
}
