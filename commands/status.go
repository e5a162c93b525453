package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gamma-cli/gamma"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status <generation-id>",
	Short: "Show the current status of a generation",
	Long: `Query a generation once and print its status and, when finished, its
artifact URLs. Pair with 'generate --no-wait' to check on long-running
generations without keeping a process around.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Print the raw generation record as JSON")
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	gen, err := client.GetGeneration(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if gen.GenerationID == "" {
		gen.GenerationID = args[0]
	}

	return printStatus(os.Stdout, gen, statusJSON)
}

// printStatus writes the generation record to w.
func printStatus(w io.Writer, gen *gamma.Generation, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(gen, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	fmt.Fprintf(w, "Generation: %s\n", gen.GenerationID)
	fmt.Fprintf(w, "Status: %s\n", gen.Status)
	if gen.GammaURL != "" {
		fmt.Fprintf(w, "View in Gamma: %s\n", gen.GammaURL)
	}
	if gen.PDFURL != "" {
		fmt.Fprintf(w, "PDF: %s\n", gen.PDFURL)
	}
	if gen.PPTXURL != "" {
		fmt.Fprintf(w, "PPTX: %s\n", gen.PPTXURL)
	}
	if gen.Status == gamma.StatusCompleted {
		fmt.Fprintf(w, "Credits used: %d, remaining: %d\n", gen.Credits.Deducted, gen.Credits.Remaining)
	}
	return nil
}
