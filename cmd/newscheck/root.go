package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"news-summarizer-api/api/dto/responses"
	"news-summarizer-api/core/domain"
	stdhttp "news-summarizer-api/infrastructure/http/standard"
	"news-summarizer-api/infrastructure/logger/structured"
	"news-summarizer-api/newscheck"
	"news-summarizer-api/pkg/config"
	"news-summarizer-api/pkg/featureflags"
)

// usageError marks bad flag combinations so they exit like input errors
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func isUsageError(err error) bool {
	var u *usageError
	return errors.As(err, &u)
}

type options struct {
	url     string
	text    string
	timeout time.Duration
	pretty  bool
	verbose bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "newscheck",
		Short: "Summarize a news article and judge whether it reads as fake",
		Long: `newscheck fetches an article (or takes raw text), summarizes it and runs a
zero-shot fake/real classification. The result is printed as JSON.

The inference credential is read from HF_API_TOKEN. A .env file in the
working directory is loaded first.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &usageError{msg: fmt.Sprintf("unexpected argument %q", args[0])}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.url == "" && opts.text == "" {
				return &usageError{msg: "one of --url or --text is required"}
			}
			return analyze(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "", "article URL to fetch and analyze")
	cmd.Flags().StringVar(&opts.text, "text", "", "raw article text to analyze (ignored when --url is set)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "overall deadline for the analysis")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the JSON output")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline progress to stderr")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "newscheck version %s\n", newscheck.Version)
		},
	})

	return cmd
}

func analyze(ctx context.Context, stdout, stderr io.Writer, opts *options) error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	level := logrus.ErrorLevel
	if opts.verbose {
		level = logrus.DebugLevel
	}
	logger := structured.NewWithWriter(stderr, level)

	// History is a server concern; the CLI never records
	flags := featureflags.NewEnvManager("FEATURE_").WithDefaults(featureflags.Defaults)
	flags.SetEnabled(featureflags.HistoryEnabled, false)

	client, err := newscheck.NewClient(
		newscheck.WithHTTPClient(stdhttp.NewStandardHTTPClient(cfg.Fetch.Timeout)),
		newscheck.WithLogger(logger),
		newscheck.WithFlags(flags),
		newscheck.WithAPIToken(cfg.Inference.Token),
		newscheck.WithInferenceEndpoint(cfg.Inference.BaseURL),
		newscheck.WithModels(cfg.Inference.SummarizationModel, cfg.Inference.ClassificationModel),
		newscheck.WithInferenceTimeout(cfg.Inference.Timeout),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	result, err := client.Analyze(ctx, domain.AnalysisInput{URL: opts.url, Text: opts.text})
	closeErr := client.Close(ctx)
	if err != nil {
		return err
	}
	if closeErr != nil {
		logger.Warn("Client did not shut down cleanly", map[string]interface{}{"error": closeErr.Error()})
	}

	enc := json.NewEncoder(stdout)
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(responses.FromResult(result))
}
