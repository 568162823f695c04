package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/diogo/llmsay/internal/config"
)

// isolate gives the test an empty HOME and working directory and clears
// LLMSAY_* variables so the machine's own configuration cannot leak in.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	for _, key := range []string{config.EnvModel, config.EnvCharacter, config.EnvURL, config.EnvVerbose} {
		t.Setenv(key, "")
	}
}

// resetFlags restores every root flag to its default and unmarks it as set
func resetFlags(t *testing.T) {
	t.Helper()
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// execute runs the root command with args and returns stdout and stderr
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(t)
	t.Cleanup(func() {
		resetFlags(t)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	cmd := rootCmd
	if cmd.Use != "llmsay <message>" {
		t.Errorf("Expected use 'llmsay <message>', got %s", cmd.Use)
	}
	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}
	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestRootCommand_FlagDefaults(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		def       string
	}{
		{"model", "m", "llama3.2"},
		{"character", "c", "ferris"},
		{"url", "u", "http://localhost:11434"},
		{"verbose", "", "false"},
		{"no-color", "", "false"},
		{"copy", "", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := rootCmd.Flags().Lookup(tt.name)
			if f == nil {
				t.Fatalf("flag --%s not registered", tt.name)
			}
			if f.Shorthand != tt.shorthand {
				t.Errorf("--%s shorthand = %q, want %q", tt.name, f.Shorthand, tt.shorthand)
			}
			if f.DefValue != tt.def {
				t.Errorf("--%s default = %q, want %q", tt.name, f.DefValue, tt.def)
			}
		})
	}
}

func TestRootCommand_CharacterHelpListsNames(t *testing.T) {
	usage := rootCmd.Flags().Lookup("character").Usage
	for _, name := range []string{"ferris", "cow", "dragon", "bunny"} {
		if !strings.Contains(usage, name) {
			t.Errorf("character flag usage %q does not mention %s", usage, name)
		}
	}
}

func TestRootCommand_RequiresExactlyOneMessage(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no message", []string{}},
		{"two messages", []string{"one", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(t, tt.args...); err == nil {
				t.Error("expected an argument error")
			}
		})
	}
}

func TestRootCommand_Version(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.HasPrefix(stdout, "llmsay "+Version) {
		t.Errorf("version output = %q", stdout)
	}
}
