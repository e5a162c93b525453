package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gamma-cli/gamma"
)

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List workspace folders",
	Args:  cobra.NoArgs,
	RunE:  runFolders,
}

func init() {
	rootCmd.AddCommand(foldersCmd)
}

func runFolders(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	folders, err := client.ListFolders(cmd.Context())
	if err != nil {
		return err
	}

	printFolders(os.Stdout, folders)
	return nil
}

// printFolders writes the folder listing to w.
func printFolders(w io.Writer, folders []gamma.Folder) {
	fmt.Fprintln(w, "Available folders:")
	for _, f := range folders {
		fmt.Fprintf(w, "  %s (ID: %s)\n", f.Name, f.ID)
	}
	fmt.Fprintf(w, "Total: %d folders\n", len(folders))
}
