// Package naming converts schema identifiers into Java naming conventions.
//
// Identifiers are split into segments on '_', '-' and ' '. Conversions:
//   - ClassName:    "phone_number" -> "PhoneNumber"
//   - VariableName: "phone_number" -> "phoneNumber"
//   - ConstantName: "phoneNumber"  -> "PHONE_NUMBER"
//
// All conversions are idempotent, and ClassName(VariableName(x)) == ClassName(x).
// Empty input or input with characters outside letters, digits and the
// delimiters yields a *MalformedIdentifierError.
package naming
