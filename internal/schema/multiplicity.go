package schema

import (
	"strings"

	"modelgen/utils"
)

// Multiplicity tells whether a property holds one value or a collection.
type Multiplicity int

const (
	Scalar Multiplicity = iota
	UnorderedMany
	OrderedMany
)

func (m Multiplicity) Valid() bool {
	return utils.IsInRange(Scalar, m, OrderedMany)
}

func (m Multiplicity) IsMany() bool {
	return m == UnorderedMany || m == OrderedMany
}

func (m Multiplicity) String() string {
	switch m {
	case Scalar:
		return "scalar"
	case UnorderedMany:
		return "unordered"
	case OrderedMany:
		return "ordered"
	default:
		return "invalid"
	}
}

// ParseMultiplicity interprets a raw multiplicity value:
//   - nil, false              -> Scalar
//   - true, "unordered"       -> UnorderedMany
//   - "ordered"               -> OrderedMany
//
// A leading ':' is accepted on the string forms. Anything else yields
// *AmbiguousMultiplicityError; there is no fallback to Scalar.
func ParseMultiplicity(v any) (Multiplicity, error) {
	m, ok := multiplicityOf(v)
	if !ok {
		return Scalar, &AmbiguousMultiplicityError{Value: v}
	}

	return m, nil
}

func multiplicityOf(v any) (Multiplicity, bool) {
	switch val := v.(type) {
	case nil:
		return Scalar, true
	case bool:
		if val {
			return UnorderedMany, true
		}

		return Scalar, true
	case Multiplicity:
		return val, val.Valid()
	case string:
		switch strings.TrimPrefix(val, ":") {
		case "unordered":
			return UnorderedMany, true
		case "ordered":
			return OrderedMany, true
		}
	}

	return Scalar, false
}
