package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/unitwiz/pkg/dimension"
	"github.com/matzehuels/unitwiz/pkg/errors"
	"github.com/matzehuels/unitwiz/pkg/forms"
)

// =============================================================================
// Parse
// =============================================================================

func (c *CLI) parseCommand() *cobra.Command {
	var asUnit bool

	cmd := &cobra.Command{
		Use:   "parse <expression>",
		Short: "Parse a quantity or unit and describe it",
		Long: `Parse an expression in the default form (or --form) and print its
magnitude, unit and dimension.

Examples:
  unitwiz parse "9.81 m s^-2"
  unitwiz parse --unit "J mol^-1 K^-1"
  unitwiz --form lindhe parse "36 km/h"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := c.read(args[0], asUnit)
			if err != nil {
				return err
			}
			return c.describe(cmd, x)
		},
	}

	cmd.Flags().BoolVar(&asUnit, "unit", false, "parse the expression as a unit")

	return cmd
}

// =============================================================================
// Convert
// =============================================================================

func (c *CLI) convertCommand() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert <quantity>",
		Short: "Convert a quantity to another unit of its form",
		Long: `Convert a quantity to another unit. The target unit is parsed in the
form of the quantity.

Example:
  unitwiz convert "1.5 kcal" --to kJ`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := c.read(args[0], false)
			if err != nil {
				return err
			}
			out, err := c.wiz.Convert(q, to)
			if err != nil {
				return err
			}
			return c.printResult(cmd, q, out)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "target unit")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// =============================================================================
// Translate
// =============================================================================

func (c *CLI) translateCommand() *cobra.Command {
	var (
		toForm           string
		asUnit           bool
		showIntermediate bool
	)

	cmd := &cobra.Command{
		Use:   "translate <expression>",
		Short: "Translate a quantity or unit to another form",
		Long: `Translate a quantity or unit from the default form (or --form) into
the form named by --to-form. The value passes through its SI base units.

Examples:
  unitwiz translate "10 m" --to-form gounits
  unitwiz --form lindhe translate "25 degC" --to-form gonum --show-intermediate`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := forms.ParseForm(toForm)
			if err != nil {
				return err
			}
			if err := c.wiz.LoadForm(target); err != nil {
				return err
			}
			x, err := c.read(args[0], asUnit)
			if err != nil {
				return err
			}
			if showIntermediate {
				mid, err := c.wiz.Decompose(x)
				if err != nil {
					return err
				}
				printKeyValue(cmd.OutOrStdout(), "SI base", mid.Expr)
			}
			out, err := c.wiz.Translate(x, target)
			if err != nil {
				return err
			}
			return c.printResult(cmd, x, out)
		},
	}

	cmd.Flags().StringVar(&toForm, "to-form", "", "target form")
	cmd.Flags().BoolVar(&asUnit, "unit", false, "translate the expression as a unit")
	cmd.Flags().BoolVar(&showIntermediate, "show-intermediate", false, "print the SI base representation")
	_ = cmd.MarkFlagRequired("to-form")
	_ = cmd.RegisterFlagCompletionFunc("to-form", completeForms)

	return cmd
}

// =============================================================================
// Standardize
// =============================================================================

func (c *CLI) standardizeCommand() *cobra.Command {
	var asUnit bool

	cmd := &cobra.Command{
		Use:   "standardize <expression>",
		Short: "Express a quantity in the standard unit of its dimension",
		Long: `Convert a quantity to the standard unit of its dimension in its form.
Standard units can be set in the [standards] table of the config file.

With --unit the standard unit for the unit's dimension is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := c.read(args[0], asUnit)
			if err != nil {
				return err
			}
			out, err := c.wiz.Standardize(x)
			if err != nil {
				return err
			}
			return c.printResult(cmd, x, out)
		},
	}

	cmd.Flags().BoolVar(&asUnit, "unit", false, "standardize the expression as a unit")

	return cmd
}

// =============================================================================
// Dims
// =============================================================================

func (c *CLI) dimsCommand() *cobra.Command {
	var isDimension bool

	cmd := &cobra.Command{
		Use:   "dims [expression]",
		Short: "Show the dimension of a quantity, or list named dimensions",
		Long: `Show the dimension of a quantity with its base exponents, SI expression
and the standard unit in the current form.

With --dimension the argument is read as a dimension name or expression such
as "force" or "[M] [L] [T]^-2". Without an argument the named dimensions are
listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.printDimensionNames(cmd)
			}
			var (
				d   dimension.Dimension
				err error
			)
			if isDimension {
				d, err = dimension.Parse(args[0])
			} else {
				var q any
				if q, err = c.read(args[0], false); err == nil {
					d, err = c.wiz.Dimensionality(q)
				}
			}
			if err != nil {
				return err
			}
			return c.printDimension(cmd, d)
		},
	}

	cmd.Flags().BoolVar(&isDimension, "dimension", false, "read the argument as a dimension")

	return cmd
}

func (c *CLI) printDimension(cmd *cobra.Command, d dimension.Dimension) error {
	out := cmd.OutOrStdout()
	name := d.Name()
	if name == "" {
		name = "-"
	}
	printKeyValue(out, "dimension", d.String())
	printKeyValue(out, "name", name)
	printKeyValue(out, "SI", orDash(d.SIExpression()))

	form, err := c.wiz.GetDefaultForm()
	if err != nil {
		return err
	}
	u, err := c.wiz.GetStandardUnit(d)
	switch {
	case errors.Is(err, errors.ErrCodeUnsupportedDimension):
		printDetail(out, "%s cannot express this dimension", form)
	case err != nil:
		return err
	default:
		text, err := c.wiz.ToString(u)
		if err != nil {
			return err
		}
		printKeyValue(out, "standard", fmt.Sprintf("%s (%s)", orDash(text), form))
	}

	for _, comp := range d.Components() {
		printDetail(out, "%s^%d", comp.Base.Symbol(), comp.Power)
	}
	return nil
}

func (c *CLI) printDimensionNames(cmd *cobra.Command) error {
	rows := make([][]string, 0, len(dimension.Names()))
	for _, n := range dimension.Names() {
		d, _ := dimension.Lookup(n)
		rows = append(rows, []string{StyleValue.Render(n), d.String(), StyleDim.Render(orDash(d.SIExpression()))})
	}
	printTable(cmd.OutOrStdout(), []string{"Name", "Dimension", "SI"}, rows)
	return nil
}

// =============================================================================
// Helpers
// =============================================================================

// read parses text in the current default form.
func (c *CLI) read(text string, asUnit bool) (any, error) {
	if asUnit {
		return c.wiz.ParseUnit(text)
	}
	return c.wiz.ParseQuantity(text)
}

// describe prints the form, text, magnitude, unit and dimension of x.
func (c *CLI) describe(cmd *cobra.Command, x any) error {
	out := cmd.OutOrStdout()
	form, err := c.wiz.GetForm(x)
	if err != nil {
		return err
	}
	text, err := c.format(x)
	if err != nil {
		return err
	}
	d, err := c.wiz.Dimensionality(x)
	if err != nil {
		return err
	}

	printKeyValue(out, "form", form.String())
	printKeyValue(out, "value", orDash(text))
	if c.wiz.IsQuantity(x) {
		u, err := c.wiz.GetUnit(x)
		if err != nil {
			return err
		}
		unit, err := c.wiz.ToString(u)
		if err != nil {
			return err
		}
		printKeyValue(out, "unit", orDash(unit))
	}
	printKeyValue(out, "dimension", d.String())
	if name := d.Name(); name != "" {
		printDetail(out, "%s", name)
	}
	return nil
}

// printResult prints "from → to" for an operation result.
func (c *CLI) printResult(cmd *cobra.Command, from, to any) error {
	src, err := c.format(from)
	if err != nil {
		return err
	}
	dst, err := c.format(to)
	if err != nil {
		return err
	}
	form, err := c.wiz.GetForm(to)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), orDash(src), orDash(dst))
	printDetail(cmd.OutOrStdout(), "%s", form)
	return nil
}

// format renders x in its form's notation. With --human, quantity
// magnitudes are digit-grouped.
func (c *CLI) format(x any) (string, error) {
	if !c.opts.human || !c.wiz.IsQuantity(x) {
		return c.wiz.ToString(x)
	}
	mag, u, err := c.wiz.GetMagnitudeAndUnit(x)
	if err != nil {
		return "", err
	}
	unit, err := c.wiz.ToString(u)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(humanMagnitude(mag) + " " + unit), nil
}

// humanMagnitude digit-groups a float64 or []float64 magnitude.
func humanMagnitude(mag any) string {
	switch v := mag.(type) {
	case float64:
		return humanize.CommafWithDigits(v, humanDigits)
	case []float64:
		parts := make([]string, len(v))
		for i, f := range v {
			parts[i] = humanize.CommafWithDigits(f, humanDigits)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprint(mag)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
