//go:build !unitwiz_no_lindhe

package lindhe

import "github.com/matzehuels/unitwiz/pkg/forms"

func init() {
	forms.Register(forms.Lindhe, func() forms.Adapter { return New() })
}
