// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/oastype/oaserrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// names lists the options that select a source, for the error message.
func ValidateSingleInputSource(names string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	switch {
	case sourceCount == 0:
		return &oaserrors.ConfigError{Option: "input", Message: "must specify an input source (use " + names + ")"}
	case sourceCount > 1:
		return &oaserrors.ConfigError{Option: "input", Value: sourceCount, Message: "must specify exactly one input source"}
	}
	return nil
}
