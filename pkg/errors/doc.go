// Package errors provides structured error types for programmatic error
// handling across the declaration model, the template parser and the API.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeInvalidTemplate,
//	    "template contains unrecognized tokens",
//	    map[string]any{
//	        "template": "--n@me <VALUE>",
//	        "dropped":  []string{"--n@me"},
//	    },
//	)
//
//	if errors.HasCode(err, errors.ErrCodeInvalidArgument) {
//	    // absent or blank input
//	}
package errors
