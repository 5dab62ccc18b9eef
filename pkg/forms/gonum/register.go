//go:build !unitwiz_no_gonum

package gonum

import "github.com/matzehuels/unitwiz/pkg/forms"

func init() {
	forms.Register(forms.Gonum, func() forms.Adapter { return New() })
}
