package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/unitwiz/pkg/forms"
)

// libraries names the Go package behind each built-in form.
var libraries = map[forms.Form]string{
	forms.Gonum:   "gonum.org/v1/gonum/unit",
	forms.GoUnits: "github.com/bcicen/go-units",
	forms.Lindhe:  "github.com/martinlindhe/unit",
}

// formsCommand creates the forms command.
func (c *CLI) formsCommand() *cobra.Command {
	var discover bool

	cmd := &cobra.Command{
		Use:   "forms",
		Short: "List available unit forms",
		Long: `List the forms compiled into unitwiz, whether their library is usable,
which are loaded and supported, and which one is the default.

With --discover every form is probed again before listing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			if discover {
				prog := newProgress(logger)
				found := c.wiz.DiscoverForms()
				n := 0
				for _, ok := range found {
					if ok {
						n++
					}
				}
				prog.done(fmt.Sprintf("Discovered %d of %d forms", n, len(found)))
			}
			return c.printForms(cmd)
		},
	}

	cmd.Flags().BoolVar(&discover, "discover", false, "probe every form before listing")

	return cmd
}

func (c *CLI) printForms(cmd *cobra.Command) error {
	def, err := c.wiz.GetDefaultForm()
	if err != nil {
		return err
	}
	found := c.wiz.ListFound()
	loaded := c.wiz.ListLoaded()
	supported := c.wiz.ListSupported()

	rows := make([][]string, 0, len(found))
	for _, f := range forms.Known() {
		rows = append(rows, []string{
			StyleValue.Render(f.String()),
			mark(slices.Contains(found, f)),
			mark(slices.Contains(loaded, f)),
			mark(slices.Contains(supported, f)),
			mark(f == def),
			StyleDim.Render(libraries[f]),
		})
	}

	out := cmd.OutOrStdout()
	printTable(out, []string{"Form", "Found", "Loaded", "Supported", "Default", "Library"}, rows)
	printInfo(out, "default form: %s", StyleHighlight.Render(def.String()))
	return nil
}
