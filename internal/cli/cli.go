package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/unitwiz/pkg/buildinfo"
	"github.com/matzehuels/unitwiz/pkg/config"
	"github.com/matzehuels/unitwiz/pkg/errors"
	"github.com/matzehuels/unitwiz/pkg/forms"
	"github.com/matzehuels/unitwiz/pkg/wizard"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "unitwiz"

	// defaultAddr is the listen address of the serve command.
	defaultAddr = ":8080"

	// humanDigits is the number of decimals kept by --human.
	humanDigits = 6
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	form    string // form used instead of the configured default
	config  string // explicit config file path
	verbose bool   // debug logging
	human   bool   // digit-grouped magnitudes
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	opts globalOptions
	wiz  *wizard.Wizard

	// newWizard creates the wizard commands run against.
	newWizard func() *wizard.Wizard
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:    newLogger(w, level),
		newWizard: func() *wizard.Wizard { return wizard.New() },
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "unitwiz parses, converts and translates physical quantities",
		Long: `unitwiz works with physical quantities across several Go unit libraries
("forms"). It parses and converts quantities, translates them between forms,
and standardizes them to configured units.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.opts.form, "form", "", "form to use instead of the configured default")
	flags.StringVar(&c.opts.config, "config", "", "config file (default $UNITWIZ_CONFIG or ~/.config/unitwiz/config.toml)")
	flags.BoolVarP(&c.opts.verbose, "verbose", "v", false, "enable verbose logging")
	flags.BoolVar(&c.opts.human, "human", false, "print digit-grouped magnitudes")
	_ = root.RegisterFlagCompletionFunc("form", completeForms)

	root.AddCommand(c.formsCommand())
	root.AddCommand(c.parseCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.translateCommand())
	root.AddCommand(c.standardizeCommand())
	root.AddCommand(c.dimsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup configures logging and builds the wizard from the config file and
// the --form flag. It runs before every command.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	if c.opts.verbose {
		c.SetLogLevel(LogDebug)
	}
	installHooks(c.Logger)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	path, err := config.Path(c.opts.config)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.Logger.Debug("config", "path", path)

	c.wiz = c.newWizard()
	if err := cfg.Apply(c.wiz); err != nil {
		return err
	}

	if c.opts.form != "" {
		if err := errors.ValidateFormName(c.opts.form); err != nil {
			return err
		}
		form := forms.Form(c.opts.form)
		if err := c.wiz.LoadForm(form); err != nil {
			return err
		}
		if err := c.wiz.SetDefaultForm(form); err != nil {
			return err
		}
	}
	return nil
}
