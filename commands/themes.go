package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gamma-cli/gamma"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List workspace themes",
	Args:  cobra.NoArgs,
	RunE:  runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	themes, err := client.ListThemes(cmd.Context())
	if err != nil {
		return err
	}

	printThemes(os.Stdout, themes)
	return nil
}

// printThemes writes the theme listing to w.
func printThemes(w io.Writer, themes []gamma.Theme) {
	fmt.Fprintln(w, "Available themes:")
	for _, th := range themes {
		marker := ""
		if th.IsDefault {
			marker = " [default]"
		}
		fmt.Fprintf(w, "  %s (ID: %s)%s\n", th.Name, th.ID, marker)
		if th.Colors != nil {
			fmt.Fprintf(w, "    colors: primary=%s background=%s\n", th.Colors.Primary, th.Colors.Background)
		}
	}
	fmt.Fprintf(w, "Total: %d themes\n", len(themes))
}
