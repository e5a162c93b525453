// Package commands implements the gamma CLI command tree.
package commands

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gamma-cli/config"
	"gamma-cli/gamma"
)

var (
	flagAPIKey  string
	flagBaseURL string
	flagVerbose bool
	flagQuiet   bool
)

var (
	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gamma",
	Short: "Create Gamma presentations, documents and social posts from text",
	Long: `gamma talks to the Gamma Generate API: it submits content-generation
requests, polls until the generation finishes and prints the resulting
artifact URLs.

An API key is required. Set GAMMA_API_KEY or pass --api-key; keys are
managed at https://gamma.app/settings/api-keys.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if flagAPIKey != "" {
			cfg.APIKey = flagAPIKey
		}
		if flagBaseURL != "" {
			cfg.BaseURL = flagBaseURL
		}
		logger = newLogger(cfg.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Gamma API key (overrides GAMMA_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "API base URL (overrides GAMMA_BASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
}

// newLogger builds the CLI logger. Logs go to stderr so that stdout stays
// reserved for command output.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if flagVerbose {
		lvl = zerolog.DebugLevel
	}
	if flagQuiet {
		lvl = zerolog.ErrorLevel
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// newClient constructs a gamma.Client from the loaded configuration. When no
// API key is configured and stdin is a terminal, the key is prompted for
// without echo.
func newClient(opts ...gamma.Option) (*gamma.Client, error) {
	key := cfg.APIKey
	if key == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		var err error
		key, err = promptAPIKey()
		if err != nil {
			return nil, err
		}
	}
	if key == "" {
		return nil, fmt.Errorf("%w: set GAMMA_API_KEY or pass --api-key (keys: https://gamma.app/settings/api-keys)", gamma.ErrAPIKeyRequired)
	}

	opts = append([]gamma.Option{
		gamma.WithBaseURL(cfg.BaseURL),
		gamma.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		gamma.WithPollInterval(cfg.PollInterval),
		gamma.WithMaxWait(cfg.MaxWait),
	}, opts...)
	return gamma.New(key, opts...), nil
}

// promptAPIKey reads the API key from the terminal without echoing it.
func promptAPIKey() (string, error) {
	fmt.Fprint(os.Stderr, "Gamma API key: ")
	key, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}
	return strings.TrimSpace(string(key)), nil
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
