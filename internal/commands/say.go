package commands

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/diogo/llmsay/internal/api"
	"github.com/diogo/llmsay/internal/bubble"
	"github.com/diogo/llmsay/internal/characters"
	"github.com/diogo/llmsay/internal/config"
	apierrors "github.com/diogo/llmsay/internal/errors"
	"github.com/diogo/llmsay/internal/logger"
	"github.com/diogo/llmsay/internal/render"
)

// newGenerator builds the client used by runSay; tests replace it.
var newGenerator = func(baseURL string, timeout time.Duration) (api.Generator, error) {
	return api.NewClient(baseURL, api.WithTimeout(timeout))
}

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// runSay sends message to the endpoint and prints the reply as a bubble.
// A failed request prints one diagnostic line and is not returned as an
// error, so the process still exits normally.
func runSay(cmd *cobra.Command, message string) error {
	cfg, cfgErr := config.LoadConfig()
	opts := resolveOptions(cmd, cfg)

	logger.Configure(cmd.ErrOrStderr(), opts.verbose)
	log := logger.Named("say")
	if cfgErr != nil {
		log.Warnf("ignoring configuration: %v", cfgErr)
	}

	log.WithFields(logger.Fields{
		"model":     opts.model,
		"character": opts.character,
		"url":       opts.url,
	}).Debug("resolved options")

	printer := render.NewPrinter(cmd.OutOrStdout(), opts.color)

	client, err := newGenerator(opts.url, time.Duration(opts.timeout)*time.Second)
	if err != nil {
		return printer.Failure(err)
	}

	spin := startSpinner(cmd.ErrOrStderr(), "Asking "+opts.model)
	start := time.Now()
	output, err := client.Generate(cmd.Context(), opts.model, message)
	spin.halt()

	if err != nil {
		log.WithFields(logger.Fields{
			"network":  apierrors.IsNetworkError(err),
			"timeout":  apierrors.IsTimeoutError(err),
			"parse":    apierrors.IsParseError(err),
			"status":   apierrors.GetHTTPStatus(err),
			"endpoint": apierrors.GetEndpoint(err),
			"body":     apierrors.GetResponseBody(err),
		}).Debug("generate failed")
		return printer.Failure(err)
	}

	log.WithFields(logger.Fields{
		"elapsed":        time.Since(start).Round(time.Millisecond),
		"total_duration": output.TotalDuration,
		"model":          output.Model,
		"done":           output.Done,
	}).Debug("reply received")

	text := bubble.Clean(output.Text())

	if opts.copy {
		if err := copyToClipboard(text); err != nil {
			log.Warnf("failed to copy to clipboard: %v", err)
		}
	}

	return printer.Say(text, characters.Parse(opts.character))
}
