package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/unitwiz/pkg/errors"
	"github.com/matzehuels/unitwiz/pkg/observability"
)

// execute runs the root command with args against config and returns its
// standard output.
func execute(t *testing.T, config string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(observability.Reset)

	path := filepath.Join(t.TempDir(), "config.toml")
	if config != "" {
		if err := os.WriteFile(path, []byte(config), 0o644); err != nil {
			t.Fatalf("WriteFile error: %v", err)
		}
	}

	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", path}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"parse", []string{"parse", "9.81 m s^-2"}, []string{"gonum", "9.81 m s^-2", "[L] [T]^-2"}},
		{"parse unit", []string{"parse", "--unit", "J mol^-1 K^-1"}, []string{"J mol^-1 K^-1"}},
		{"parse in form", []string{"--form", "lindhe", "parse", "36 km/h"}, []string{"lindhe", "36 km/h"}},
		{"convert", []string{"convert", "2 km", "--to", "m"}, []string{"2 km", "2000 m"}},
		{"translate", []string{"translate", "10 m", "--to-form", "gounits"}, []string{"10 m", "gounits"}},
		{"translate intermediate", []string{"translate", "5 N", "--to-form", "gounits", "--show-intermediate"}, []string{"5 m kg s^-2"}},
		{"standardize", []string{"standardize", "3 km"}, []string{"3000 m"}},
		{"dims of quantity", []string{"dims", "5 N"}, []string{"[M] [L] [T]^-2", "force"}},
		{"dims of dimension", []string{"dims", "--dimension", "velocity"}, []string{"[L] [T]^-1", "m s^-1"}},
		{"dims list", []string{"dims"}, []string{"angular_velocity", "pressure"}},
		{"human", []string{"--human", "parse", "1234567 m"}, []string{"1,234,567 m"}},
		{"forms", []string{"forms"}, []string{"gonum", "gounits", "lindhe", "default form: gonum"}},
		{"forms discover", []string{"forms", "--discover"}, []string{"github.com/martinlindhe/unit"}},
		{"completion", []string{"completion", "bash"}, []string{"unitwiz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			if err != nil {
				t.Fatalf("execute(%v) error: %v", tt.args, err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("execute(%v) output missing %q:\n%s", tt.args, w, out)
				}
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"mismatch", []string{"convert", "1 m", "--to", "s"}, errors.ErrCodeDimensionMismatch},
		{"parse error", []string{"parse", "1 parsec-ish"}, errors.ErrCodeParse},
		{"empty input", []string{"parse", ""}, errors.ErrCodeParse},
		{"bad form name", []string{"--form", "Bad Form", "parse", "1 m"}, errors.ErrCodeInvalidForm},
		{"unknown form", []string{"--form", "pint", "parse", "1 m"}, errors.ErrCodeLoad},
		{"unsupported dimension", []string{"translate", "1 mol", "--to-form", "lindhe"}, errors.ErrCodeUnsupportedDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("execute(%v) error = %v, want %s", tt.args, err, tt.code)
			}
		})
	}
}

func TestConfigFile(t *testing.T) {
	config := `
default_form = "lindhe"

[standards.lindhe]
energy = "kJ"
`
	out, err := execute(t, config, "forms")
	if err != nil {
		t.Fatalf("forms error: %v", err)
	}
	if !strings.Contains(out, "default form: lindhe") {
		t.Errorf("forms output missing configured default:\n%s", out)
	}

	out, err = execute(t, config, "standardize", "2000 J")
	if err != nil {
		t.Fatalf("standardize error: %v", err)
	}
	if !strings.Contains(out, "2 kJ") {
		t.Errorf("standardize output = %q, want 2 kJ", out)
	}
}

func TestConfigFileInvalid(t *testing.T) {
	_, err := execute(t, "colour = 1\n", "forms")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("unknown config key error = %v, want INVALID_INPUT", err)
	}
}

func TestCompleteForms(t *testing.T) {
	got, directive := completeForms(nil, nil, "go")
	if strings.Join(got, ",") != "gonum,gounits" {
		t.Errorf("completeForms(go) = %v, want [gonum gounits]", got)
	}
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("completeForms() directive = %v, want NoFileComp", directive)
	}
}

func TestHumanMagnitude(t *testing.T) {
	tests := []struct {
		mag  any
		want string
	}{
		{1234567.0, "1,234,567"},
		{0.5, "0.5"},
		{[]float64{1000, 2}, "[1,000, 2]"},
	}
	for _, tt := range tests {
		if got := humanMagnitude(tt.mag); got != tt.want {
			t.Errorf("humanMagnitude(%v) = %q, want %q", tt.mag, got, tt.want)
		}
	}
}
