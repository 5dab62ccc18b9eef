package wizard

import (
	"sync"

	"github.com/matzehuels/unitwiz/pkg/dimension"
	"github.com/matzehuels/unitwiz/pkg/forms"
	_ "github.com/matzehuels/unitwiz/pkg/forms/all"
)

var (
	defaultOnce   sync.Once
	defaultWizard *Wizard
)

// Default returns the process-wide wizard used by the package-level
// functions. It is created on first use with every registered form.
func Default() *Wizard {
	defaultOnce.Do(func() {
		defaultWizard = New()
	})
	return defaultWizard
}

// DiscoverForms calls Default().DiscoverForms.
func DiscoverForms() map[forms.Form]bool { return Default().DiscoverForms() }

// LoadForm calls Default().LoadForm.
func LoadForm(form forms.Form) error { return Default().LoadForm(form) }

// UnloadForm calls Default().UnloadForm.
func UnloadForm(form forms.Form) error { return Default().UnloadForm(form) }

// SetDefaultForm calls Default().SetDefaultForm.
func SetDefaultForm(form forms.Form) error { return Default().SetDefaultForm(form) }

// GetDefaultForm calls Default().GetDefaultForm.
func GetDefaultForm() (forms.Form, error) { return Default().GetDefaultForm() }

// ListFound calls Default().ListFound.
func ListFound() []forms.Form { return Default().ListFound() }

// ListLoaded calls Default().ListLoaded.
func ListLoaded() []forms.Form { return Default().ListLoaded() }

// ListSupported calls Default().ListSupported.
func ListSupported() []forms.Form { return Default().ListSupported() }

// ParseQuantity calls Default().ParseQuantity.
func ParseQuantity(text string, opts ...CallOption) (any, error) {
	return Default().ParseQuantity(text, opts...)
}

// ParseUnit calls Default().ParseUnit.
func ParseUnit(text string, opts ...CallOption) (any, error) {
	return Default().ParseUnit(text, opts...)
}

// MakeQuantity calls Default().MakeQuantity.
func MakeQuantity(magnitude any, unit any, opts ...CallOption) (any, error) {
	return Default().MakeQuantity(magnitude, unit, opts...)
}

// Convert calls Default().Convert.
func Convert(x any, to any) (any, error) { return Default().Convert(x, to) }

// Translate calls Default().Translate.
func Translate(x any, form forms.Form) (any, error) { return Default().Translate(x, form) }

// GetMagnitude calls Default().GetMagnitude.
func GetMagnitude(q any) (any, error) { return Default().GetMagnitude(q) }

// GetMagnitudeIn calls Default().GetMagnitudeIn.
func GetMagnitudeIn(q any, unit any) (any, error) { return Default().GetMagnitudeIn(q, unit) }

// GetUnit calls Default().GetUnit.
func GetUnit(q any) (any, error) { return Default().GetUnit(q) }

// GetMagnitudeAndUnit calls Default().GetMagnitudeAndUnit.
func GetMagnitudeAndUnit(q any) (any, any, error) { return Default().GetMagnitudeAndUnit(q) }

// ChangeMagnitude calls Default().ChangeMagnitude.
func ChangeMagnitude(q any, magnitude any) (any, error) {
	return Default().ChangeMagnitude(q, magnitude)
}

// IsQuantity calls Default().IsQuantity.
func IsQuantity(x any) bool { return Default().IsQuantity(x) }

// IsUnit calls Default().IsUnit.
func IsUnit(x any) bool { return Default().IsUnit(x) }

// GetForm calls Default().GetForm.
func GetForm(x any) (forms.Form, error) { return Default().GetForm(x) }

// Dimensionality calls Default().Dimensionality.
func Dimensionality(x any) (dimension.Dimension, error) { return Default().Dimensionality(x) }

// IsDimensionless calls Default().IsDimensionless.
func IsDimensionless(x any) (bool, error) { return Default().IsDimensionless(x) }

// GetStandardUnit calls Default().GetStandardUnit.
func GetStandardUnit(d dimension.Dimension, opts ...CallOption) (any, error) {
	return Default().GetStandardUnit(d, opts...)
}

// SetStandardUnit calls Default().SetStandardUnit.
func SetStandardUnit(d dimension.Dimension, unit any) error {
	return Default().SetStandardUnit(d, unit)
}

// Standardize calls Default().Standardize.
func Standardize(q any) (any, error) { return Default().Standardize(q) }

// ToString calls Default().ToString.
func ToString(x any) (string, error) { return Default().ToString(x) }

// AreCompatible calls Default().AreCompatible.
func AreCompatible(a, b any) (bool, error) { return Default().AreCompatible(a, b) }

// AreEqual calls Default().AreEqual.
func AreEqual(a, b any) (bool, error) { return Default().AreEqual(a, b) }

// AreClose calls Default().AreClose.
func AreClose(a, b any, rtol, atol float64) (bool, error) {
	return Default().AreClose(a, b, rtol, atol)
}

// Check calls Default().Check.
func Check(x any, req Requirement) bool { return Default().Check(x, req) }
