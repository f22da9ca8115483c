package naming

import (
	"strings"
	"unicode"
)

// ToPascalCase converts a snake_case identifier to PascalCase.
// Underscores trigger capitalization of the next letter and are dropped.
// Example: "operation_id" -> "OperationId"
// Example: "in_" -> "In"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(s))
	capitalizeNext := true

	for _, r := range s {
		if r == '_' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// ToCamelCase converts a snake_case identifier to camelCase.
// Like PascalCase but with the first letter lowercase.
// Example: "terms_of_service" -> "termsOfService"
// Example: "ref" -> "ref"
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// ToSnakeCase converts a camelCase wire name back to snake_case.
// It is the inverse of ToCamelCase for identifiers without digits or
// consecutive capitals, and is used to render diagnostics in terms of the
// in-memory field name.
// Example: "operationId" -> "operation_id"
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}
