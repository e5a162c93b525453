package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gamma-cli/gamma"
)

var (
	generateFile         string
	generateExample      bool
	generateNoWait       bool
	generateJSON         bool
	generatePollInterval time.Duration
	generateMaxWait      time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Create a generation and wait for the result",
	Long: `Create a generation from a payload and poll until it completes.

The payload is read from stdin as JSON, from --file as JSON or YAML, or
--example submits a built-in example.

Examples:
  gamma generate < payload.json
  gamma generate --file payload.yaml
  gamma generate --example
  gamma generate --no-wait < payload.json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateFile, "file", "f", "", "Payload file (.json, .yaml or .yml)")
	generateCmd.Flags().BoolVar(&generateExample, "example", false, "Submit the built-in example payload")
	generateCmd.Flags().BoolVar(&generateNoWait, "no-wait", false, "Print the generation ID and exit without polling")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Print the raw generation record as JSON")
	generateCmd.Flags().DurationVar(&generatePollInterval, "poll-interval", 0, "Delay between status checks (overrides GAMMA_POLL_INTERVAL)")
	generateCmd.Flags().DurationVar(&generateMaxWait, "max-wait", 0, "Maximum time to wait for completion (overrides GAMMA_MAX_WAIT)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	req, err := loadGenerateRequest()
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if generatePollInterval > 0 {
		cfg.PollInterval = generatePollInterval
	}
	if generateMaxWait > 0 {
		cfg.MaxWait = generateMaxWait
	}

	client, err := newClient(gamma.WithStatusFunc(func(ev gamma.StatusEvent) {
		logger.Info().
			Str("status", string(ev.Status)).
			Dur("elapsed", ev.Elapsed).
			Msg("generation status")
	}))
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	logger.Info().Msg("creating generation")
	id, err := client.CreateGeneration(ctx, req)
	if err != nil {
		return err
	}
	logger.Info().Str("generation_id", id).Msg("generation created")

	if generateNoWait {
		fmt.Println(id)
		return nil
	}

	gen, err := client.WaitForGeneration(ctx, id)
	if err != nil {
		return err
	}

	return printGeneration(os.Stdout, gen, generateJSON)
}

// loadGenerateRequest resolves the payload source: --example, --file, or
// stdin when something is piped in.
func loadGenerateRequest() (*gamma.GenerationRequest, error) {
	switch {
	case generateExample:
		return exampleRequest(), nil
	case generateFile != "":
		return loadPayloadFile(generateFile)
	case stdinHasData():
		return decodePayload(os.Stdin, false)
	}
	return nil, errors.New("no payload provided: pipe JSON to stdin, or pass --file or --example")
}

// printGeneration writes the completed generation to w.
func printGeneration(w io.Writer, gen *gamma.Generation, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(gen, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	fmt.Fprintln(w, "Generation complete!")
	fmt.Fprintf(w, "View in Gamma: %s\n", gen.GammaURL)
	if gen.PDFURL != "" {
		fmt.Fprintf(w, "PDF: %s\n", gen.PDFURL)
	}
	if gen.PPTXURL != "" {
		fmt.Fprintf(w, "PPTX: %s\n", gen.PPTXURL)
	}
	fmt.Fprintf(w, "Credits used: %d, remaining: %d\n", gen.Credits.Deducted, gen.Credits.Remaining)
	return nil
}
