package diagnostic

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

type codedErr struct{ hints []string }

func (e *codedErr) Error() string          { return "coded failure" }
func (e *codedErr) DiagnosticCode() string { return CodeUnresolvedReference }
func (e *codedErr) Suggestions() []string  { return e.hints }

func TestFromError(t *testing.T) {
	t.Run("coded and wrapped", func(t *testing.T) {
		err := errors.Wrap(&codedErr{hints: []string{"order_status"}}, "planning order")

		d := FromError(err, "order", "order.status")
		assert.Equal(t, SeverityError, d.Severity)
		assert.Equal(t, CodeUnresolvedReference, d.Code)
		assert.Equal(t, "planning order: coded failure", d.Message)
		assert.Equal(t, "order", d.Unit)
		assert.Equal(t, "order.status", d.Path)
		assert.Equal(t, []string{"order_status"}, d.Suggestions)
	})

	t.Run("plain error is internal", func(t *testing.T) {
		d := FromError(errors.New("disk on fire"), "", "")
		assert.Equal(t, CodeInternal, d.Code)
		assert.Empty(t, d.Suggestions)
	})
}
