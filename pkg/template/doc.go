// Package template parses option templates into structured descriptors.
//
// # Overview
//
// An option template is a compact declaration of a command-line option:
//
//	-n | --name <RequiredArgument>
//	--output [File]
//	-v
//
// The template is split on spaces and the pipe separator. Each token is then
// classified independently, first match wins:
//
//   - Value placeholder: <Name> (required) or [Name] (optional). The inner
//     text must be ASCII letters only. Both forms produce a plain value name.
//   - Long name: --name, letters only after the two dashes.
//   - Short name: -n, exactly one ASCII letter after the dash.
//
// Tokens matching none of the above are dropped. When several tokens set the
// long or short name the last one wins; value names accumulate in order.
//
// # Usage
//
// Parsing with the default, permissive rules:
//
//	t := template.Parse("-n | --name <RequiredArgument>")
//	t.LongName()   // "name"
//	t.ShortName()  // "n"
//	t.ValueNames() // ["RequiredArgument"]
//
// Rejecting templates that contain unrecognized tokens:
//
//	p := template.NewParser(template.WithStrict(true))
//	if _, err := p.Parse("--n@me"); err != nil {
//	    // [INVALID_TEMPLATE] ...
//	}
//
// Explaining which tokens were dropped:
//
//	report := template.NewParser().Inspect("--name --n@me")
//	report.Dropped // ["--n@me"]
//
// # Equality
//
// Template is a value type. Use Equal for comparison and Hash when a map key
// is needed; Go's == operator does not apply because of the value-name slice.
// Two descriptors with different raw templates are never equal, even if their
// parsed parts match.
//
// # Concurrency
//
// Parsing is pure and holds no state between calls. Parse, the token
// predicates and a *Parser are all safe for concurrent use.
package template
