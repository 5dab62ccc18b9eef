// Package all registers every built-in form. Import it for its side effects:
//
//	import _ "github.com/matzehuels/unitwiz/pkg/forms/all"
//
// Individual forms can be left out of a binary with the build tags
// unitwiz_no_gonum, unitwiz_no_gounits and unitwiz_no_lindhe.
package all

import (
	_ "github.com/matzehuels/unitwiz/pkg/forms/gonum"
	_ "github.com/matzehuels/unitwiz/pkg/forms/gounits"
	_ "github.com/matzehuels/unitwiz/pkg/forms/lindhe"
)
