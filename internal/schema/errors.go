package schema

import (
	"fmt"

	"modelgen/internal/diagnostic"
)

// AmbiguousMultiplicityError reports a multiplicity value outside
// {absent, false, true, unordered, ordered}.
type AmbiguousMultiplicityError struct {
	Value    any
	Property string
}

func (e *AmbiguousMultiplicityError) Error() string {
	msg := fmt.Sprintf("ambiguous multiplicity %#v (expected false, true, unordered or ordered)", e.Value)
	if e.Property != "" {
		return fmt.Sprintf("property %s: %s", e.Property, msg)
	}

	return msg
}

func (e *AmbiguousMultiplicityError) DiagnosticCode() string {
	return diagnostic.CodeAmbiguousMultiplicity
}

// UnsupportedVersionError is returned by File.Build for unknown schema versions.
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported schema version %q (supported: %s)", e.Version, SchemaVersion)
}
