// File: case.go
// Title: String Case Conversion Utilities
// Description: Implements case conversion functions for various naming
//              conventions commonly used in Go development. Supports
//              snake_case, camelCase, PascalCase, and kebab-case conversions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation with case conversion utilities

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// capitalize upper-cases the first rune of a word and lower-cases the rest
func capitalize(word string) string {
	if word == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
}

// splitWords splits on underscores, hyphens, and whitespace
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
}

// separate converts camelCase and PascalCase boundaries to the given separator
// and replaces existing separators. Used by ToSnakeCase and ToKebabCase.
func separate(s string, sep rune) string {
	var result strings.Builder
	var prev rune
	for i, r := range s {
		switch {
		case unicode.IsUpper(r):
			// Add separator before uppercase letters (except at the beginning
			// and inside an uppercase run)
			if i > 0 && !unicode.IsUpper(prev) && prev != sep {
				result.WriteRune(sep)
			}
			result.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r) || r == '-' || r == '_':
			result.WriteRune(sep)
		default:
			result.WriteRune(r)
		}
		prev = r
	}

	// Clean up consecutive separators
	doubled := string([]rune{sep, sep})
	single := string(sep)
	out := result.String()
	for strings.Contains(out, doubled) {
		out = strings.ReplaceAll(out, doubled, single)
	}
	return out
}

// ToSnakeCase converts a string to snake_case.
// It handles camelCase, PascalCase, and spaces by converting them to underscores.
// Example: "MyVariableName" -> "my_variable_name"
func ToSnakeCase(s string) string {
	if IsEmpty(s) {
		return s
	}
	return separate(s, '_')
}

// ToKebabCase converts a string to kebab-case.
// It handles camelCase, PascalCase, snake_case, and spaces appropriately.
// Example: "MyVariableName" -> "my-variable-name"
func ToKebabCase(s string) string {
	if IsEmpty(s) {
		return s
	}
	return separate(s, '-')
}

// ToCamelCase converts a string to camelCase.
// It handles snake_case, kebab-case, and spaces by converting them appropriately.
// Example: "my_variable_name" -> "myVariableName"
func ToCamelCase(s string) string {
	if IsEmpty(s) {
		return s
	}

	// If the string doesn't contain separators, only adjust the first character
	if !strings.ContainsAny(s, "_- ") {
		first, size := utf8.DecodeRuneInString(s)
		if unicode.IsUpper(first) {
			return string(unicode.ToLower(first)) + s[size:]
		}
		return s
	}

	words := splitWords(s)
	if len(words) == 0 {
		return s
	}

	var result strings.Builder

	// First word stays lowercase
	result.WriteString(strings.ToLower(words[0]))

	// Subsequent words are capitalized
	for i := 1; i < len(words); i++ {
		result.WriteString(capitalize(words[i]))
	}

	return result.String()
}

// ToPascalCase converts a string to PascalCase.
// It handles snake_case, kebab-case, and spaces by converting them appropriately.
// Example: "my_variable_name" -> "MyVariableName"
func ToPascalCase(s string) string {
	if IsEmpty(s) {
		return s
	}

	// If the string doesn't contain separators, only adjust the first character
	if !strings.ContainsAny(s, "_- ") {
		first, size := utf8.DecodeRuneInString(s)
		if unicode.IsLower(first) {
			return string(unicode.ToUpper(first)) + s[size:]
		}
		return s
	}

	words := splitWords(s)
	if len(words) == 0 {
		return s
	}

	var result strings.Builder
	for _, word := range words {
		result.WriteString(capitalize(word))
	}

	return result.String()
}

// ToTitleCase converts a string to Title Case.
// It capitalizes the first letter of each word while preserving spaces.
// Example: "hello world" -> "Hello World"
func ToTitleCase(s string) string {
	if IsEmpty(s) {
		return s
	}

	words := strings.Split(s, " ")
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}
