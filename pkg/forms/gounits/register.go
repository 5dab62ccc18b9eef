//go:build !unitwiz_no_gounits

package gounits

import "github.com/matzehuels/unitwiz/pkg/forms"

func init() {
	forms.Register(forms.GoUnits, func() forms.Adapter { return New() })
}
