// Package naming provides the case conversion used by the field-name policy
// of the coerce package.
//
// In-memory field names are registered in snake_case (for example
// "terms_of_service" or "in_") and are transformed to their camelCase wire
// names ("termsOfService", "in"). A trailing underscore, used to keep a field
// name clear of a reserved word, never reaches the wire.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
