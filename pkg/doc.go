// Package pkg provides the core libraries for unitwiz.
//
// # Overview
//
// unitwiz works with physical quantities across several Go unit libraries.
// Each library is wrapped as a "form": an adapter that parses, converts and
// inspects quantities in that library's own types. The pkg directory is
// organized into these areas:
//
//  1. [dimension] - Base-dimension exponent vectors and named dimensions
//  2. [codec] - The shared quantity grammar, magnitude splitting and prefixes
//  3. [forms] - The adapter contract, the form catalog and the registry
//  4. [translate] - Cross-form translation through SI base units
//  5. [standard] - Standard units per dimension and form
//  6. [wizard] - The public facade tying the above together
//
// # Architecture
//
// A cross-form translation flows through the packages like this:
//
//	quantity in form A
//	         ↓
//	    [forms] adapter A (ToBase)
//	         ↓
//	    [translate] SI base magnitude + [dimension]
//	         ↓
//	    [forms] adapter B (FromBase, Convert)
//	         ↓
//	quantity in form B
//
// # Quick Start
//
//	import "github.com/matzehuels/unitwiz/pkg/wizard"
//
//	q, err := wizard.ParseQuantity("1.5 kcal")
//	if err != nil {
//	    return err
//	}
//	kj, err := wizard.Convert(q, "kJ")
//
// # Supporting Packages
//
//   - [errors] - Coded errors shared by every package
//   - [observability] - Hooks for logging and metrics
//   - [config] - TOML configuration applied to a wizard
//   - [buildinfo] - Version information set at link time
package pkg
