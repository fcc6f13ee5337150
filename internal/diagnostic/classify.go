package diagnostic

import (
	"github.com/cockroachdb/errors"
)

// Coded is implemented by errors that map onto a stable diagnostic code.
type Coded interface {
	error
	DiagnosticCode() string
}

// Suggesting is implemented by errors that carry "did you mean" candidates.
type Suggesting interface {
	Suggestions() []string
}

// FromError classifies err into an error diagnostic located at unit and path.
// Errors that do not implement Coded are reported as CodeInternal.
func FromError(err error, unit, path string) Diagnostic {
	d := Diagnostic{
		Severity: SeverityError,
		Code:     CodeInternal,
		Message:  err.Error(),
		Unit:     unit,
		Path:     path,
	}

	var coded Coded
	if errors.As(err, &coded) {
		d.Code = coded.DiagnosticCode()
	}

	var sug Suggesting
	if errors.As(err, &sug) {
		d.Suggestions = sug.Suggestions()
	}

	return d
}
