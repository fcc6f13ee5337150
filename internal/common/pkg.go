package common

import "strings"

// SimpleName returns the last dot-separated element of a qualified name.
// "org.joda.time.DateTime" -> "DateTime", "Boolean" -> "Boolean".
func SimpleName(qualified string) string {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[i+1:]
	}

	return qualified
}

// Qualifier returns everything before the last dot, or "" for a simple name.
func Qualifier(qualified string) string {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[:i]
	}

	return ""
}
