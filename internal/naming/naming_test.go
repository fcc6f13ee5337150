package naming

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identifiers = []string{
	"person",
	"phone_number",
	"long-integer",
	"order status",
	"orderID",
	"OrderID",
	"XMLParser",
	"getHTTPResponse",
	"v2_api",
	"ID",
	"a",
	"__leading_and_trailing__",
	"mixed_Case-words here",
	"ørsted_ångström",
}

func TestClassName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"person", "Person"},
		{"phone_number", "PhoneNumber"},
		{"long-integer", "LongInteger"},
		{"order status", "OrderStatus"},
		{"orderID", "OrderID"},
		{"Person", "Person"},
		{"v2_api", "V2Api"},
		{"__x__", "X"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ClassName(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestVariableName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"person", "person"},
		{"Person", "person"},
		{"phone_number", "phoneNumber"},
		{"App", "app"},
		{"order-status", "orderStatus"},
		{"ID", "iD"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := VariableName(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConstantName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"person", "PERSON"},
		{"phone_number", "PHONE_NUMBER"},
		{"phoneNumber", "PHONE_NUMBER"},
		{"long-integer", "LONG_INTEGER"},
		{"XMLParser", "XML_PARSER"},
		{"max  size", "MAX_SIZE"},
		{"MAX_SIZE", "MAX_SIZE"},
		{"v2Api", "V2_API"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ConstantName(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClassName_RoundTripThroughVariableName(t *testing.T) {
	for _, id := range identifiers {
		t.Run(id, func(t *testing.T) {
			direct, err := ClassName(id)
			require.NoError(t, err)

			variable, err := VariableName(id)
			require.NoError(t, err)

			viaVariable, err := ClassName(variable)
			require.NoError(t, err)

			assert.Equal(t, direct, viaVariable)
		})
	}
}

func TestConversions_Idempotent(t *testing.T) {
	conversions := map[string]func(string) (string, error){
		"ClassName":    ClassName,
		"VariableName": VariableName,
		"ConstantName": ConstantName,
	}

	for name, convert := range conversions {
		for _, id := range identifiers {
			t.Run(name+"/"+id, func(t *testing.T) {
				once, err := convert(id)
				require.NoError(t, err)

				twice, err := convert(once)
				require.NoError(t, err)

				assert.Equal(t, once, twice)
			})
		}
	}
}

func TestMalformedIdentifier(t *testing.T) {
	tests := []struct {
		input  string
		reason string
	}{
		{"", "empty identifier"},
		{"___", "empty identifier"},
		{" - ", "empty identifier"},
		{"2fa", "must start with a letter"},
		{"_9lives", "must start with a letter"},
		{"org.joda", "unexpected character '.'"},
		{"List<Animal>", "unexpected character '<'"},
		{"\u212Aelvin", "letter '\u212a' does not survive case conversion"},
		{"gla\u017Fs", "letter '\u017f' does not survive case conversion"},
	}

	conversions := []func(string) (string, error){ClassName, VariableName, ConstantName}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			for _, convert := range conversions {
				got, err := convert(tt.input)
				require.Error(t, err)
				assert.Empty(t, got)

				var malformed *MalformedIdentifierError
				require.True(t, errors.As(err, &malformed))
				assert.Equal(t, tt.input, malformed.Identifier)
				assert.Equal(t, tt.reason, malformed.Reason)
			}
		})
	}
}

func TestTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"OrderID", []string{"Order", "ID"}},
		{"customerName", []string{"customer", "Name"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"order_item-ID", []string{"order", "item", "ID"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokens(tt.input))
		})
	}
}
