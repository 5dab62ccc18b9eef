// Package forms defines the capability set every unit backend implements and
// the registry that tracks which backends ("forms") are available.
//
// # Forms
//
// A form names the backend library that owns a quantity or unit object:
//
//   - gonum: gonum.org/v1/gonum/unit, SI values with dimension maps
//   - gounits: github.com/bcicen/go-units, named units grouped by quantity
//   - lindhe: github.com/martinlindhe/unit, one float type per physical kind
//
// # Adapters
//
// Each backend lives in its own subpackage (forms/gonum, forms/gounits,
// forms/lindhe) and registers a [Factory] from init(). Import the adapters you
// need, or import forms/all for every one of them:
//
//	import _ "github.com/matzehuels/unitwiz/pkg/forms/all"
//
// Building with the tag unitwiz_no_<form> drops that adapter from the binary;
// the registry then reports it as not found.
//
// # Registry
//
// [Registry] records which forms were found, which are loaded and which one
// is the default. Discovery happens lazily on first access.
package forms

import (
	"slices"

	"github.com/matzehuels/unitwiz/pkg/errors"
)

// Form identifies a unit backend.
type Form string

// Supported forms.
const (
	Gonum   Form = "gonum"
	GoUnits Form = "gounits"
	Lindhe  Form = "lindhe"
)

// Priority is the order in which the default form is picked when none was
// set explicitly. Forms registered outside this list sort after it by name.
var Priority = []Form{Gonum, GoUnits, Lindhe}

// String returns the form name.
func (f Form) String() string { return string(f) }

// ParseForm validates name and returns it as a Form. It does not check that
// the form is registered.
func ParseForm(name string) (Form, error) {
	if err := errors.ValidateFormName(name); err != nil {
		return "", err
	}
	return Form(name), nil
}

// sortByPriority orders forms by Priority, then by name.
func sortByPriority(fs []Form) {
	slices.SortFunc(fs, func(a, b Form) int {
		ia, ib := rank(a), rank(b)
		if ia != ib {
			return ia - ib
		}
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	})
}

func rank(f Form) int {
	if i := slices.Index(Priority, f); i >= 0 {
		return i
	}
	return len(Priority)
}
