package naming

import (
	"fmt"
	"strings"
	"unicode"

	"modelgen/internal/diagnostic"
)

// MalformedIdentifierError is returned for an empty or non-identifier string.
type MalformedIdentifierError struct {
	Identifier string
	Reason     string
}

func (e *MalformedIdentifierError) Error() string {
	return fmt.Sprintf("malformed identifier %q: %s", e.Identifier, e.Reason)
}

func (e *MalformedIdentifierError) DiagnosticCode() string {
	return diagnostic.CodeMalformedIdentifier
}

// Validate checks that ident can be converted by this package.
func Validate(ident string) error {
	first := true

	for _, r := range ident {
		if isSeparator(r) {
			continue
		}

		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return &MalformedIdentifierError{Identifier: ident, Reason: fmt.Sprintf("unexpected character %q", r)}
		}

		if first && !unicode.IsLetter(r) {
			return &MalformedIdentifierError{Identifier: ident, Reason: "must start with a letter"}
		}

		if !caseStable(r) {
			return &MalformedIdentifierError{
				Identifier: ident,
				Reason:     fmt.Sprintf("letter %q does not survive case conversion", r),
			}
		}

		first = false
	}

	if first {
		return &MalformedIdentifierError{Identifier: ident, Reason: "empty identifier"}
	}

	return nil
}

// caseStable reports whether the upper and lower case forms of r convert
// back into each other. The Kelvin sign, for one, lowers to 'k' and comes
// back as 'K'.
func caseStable(r rune) bool {
	up, low := unicode.ToUpper(r), unicode.ToLower(r)

	return unicode.ToUpper(unicode.ToLower(up)) == up && unicode.ToLower(unicode.ToUpper(low)) == low
}

// ClassName converts ident to upper camel case.
func ClassName(ident string) (string, error) {
	if err := Validate(ident); err != nil {
		return "", err
	}

	return className(ident), nil
}

// VariableName converts ident to lower camel case.
func VariableName(ident string) (string, error) {
	if err := Validate(ident); err != nil {
		return "", err
	}

	return lowerFirst(className(ident)), nil
}

// ConstantName converts ident to upper snake case.
func ConstantName(ident string) (string, error) {
	if err := Validate(ident); err != nil {
		return "", err
	}

	tokens := Tokens(ident)
	for i, t := range tokens {
		tokens[i] = strings.ToUpper(t)
	}

	return strings.Join(tokens, "_"), nil
}

// className capitalizes every delimiter-separated segment and drops the
// delimiters. The tail of each segment is kept as written, so existing
// humps survive ("orderID" -> "OrderID").
func className(ident string) string {
	var sb strings.Builder

	sb.Grow(len(ident))

	for _, seg := range strings.FieldsFunc(ident, isSeparator) {
		sb.WriteString(upperFirst(seg))
	}

	return sb.String()
}

func upperFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}

	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

func lowerFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}

	runes[0] = unicode.ToLower(runes[0])

	return string(runes)
}
