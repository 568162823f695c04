// Package commands provides the llmsay CLI.
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/llmsay/internal/characters"
	"github.com/diogo/llmsay/internal/config"
)

var (
	// Global flags
	modelFlag     string
	characterFlag string
	urlFlag       string
	verboseFlag   bool
	noColorFlag   bool
	copyFlag      bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "llmsay <message>",
	Short: "Ask a local LLM and have a mascot say the answer",
	Long: `llmsay sends a message to a locally hosted LLM (Ollama /api/generate)
and prints the short reply in an ASCII speech bubble, spoken by a character.

Examples:
  llmsay "Why is the sky blue?"
  llmsay -c cow "What is a monad?"
  llmsay -m mistral -u http://gpu-box:11434 "Tell me a joke"`,
	Version: Version,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSay(cmd, args[0])
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("llmsay {{.Version}} (built %s)\n", BuildTime))

	rootCmd.Flags().StringVarP(&modelFlag, "model", "m", config.DefaultModel, "Model to use")
	rootCmd.Flags().StringVarP(&characterFlag, "character", "c", config.DefaultCharacter,
		"Character to speak the reply ("+strings.Join(characters.Names(), ", ")+")")
	rootCmd.Flags().StringVarP(&urlFlag, "url", "u", config.DefaultURL, "Base URL of the LLM endpoint")
	rootCmd.Flags().BoolVar(&verboseFlag, "verbose", false, "Log request details to stderr")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable coloured output")
	rootCmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy the reply to the clipboard")
}

// options is the effective configuration for one invocation
type options struct {
	model     string
	character string
	url       string
	timeout   int
	verbose   bool
	color     bool
	copy      bool
}

// resolveOptions applies explicitly set flags over the loaded config
func resolveOptions(cmd *cobra.Command, cfg config.Config) options {
	opts := options{
		model:     cfg.Model,
		character: cfg.Character,
		url:       cfg.URL,
		timeout:   cfg.TimeoutSeconds,
		verbose:   cfg.Verbose,
		color:     cfg.Color,
		copy:      cfg.CopyToClipboard,
	}

	flags := cmd.Flags()
	if flags.Changed("model") {
		opts.model = modelFlag
	}
	if flags.Changed("character") {
		opts.character = characterFlag
	}
	if flags.Changed("url") {
		opts.url = urlFlag
	}
	if flags.Changed("verbose") {
		opts.verbose = verboseFlag
	}
	if noColorFlag {
		opts.color = false
	}
	if flags.Changed("copy") {
		opts.copy = copyFlag
	}
	return opts
}
