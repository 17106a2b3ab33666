// Package data holds the import/export commands for the whole collection.
package data

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptbox/promptbox/internal/appState"
)

const defaultExportFile = "promptbox-data.json"

var clearForceFlag bool

var DataCmd = &cobra.Command{
	Use:   "data",
	Short: "Import, export, and reset the prompt collection",
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the collection as a JSON document",
	Long: `Write the full collection (folders and prompts) as a pretty-printed JSON
document. The file defaults to ` + defaultExportFile + `; pass "-" to write to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := appState.Get().Store

		out, err := st.ExportJSON()
		if err != nil {
			return fmt.Errorf("failed to export data: %w", err)
		}

		target := defaultExportFile
		if len(args) == 1 {
			target = args[0]
		}
		if target == "-" {
			fmt.Println(string(out))
			return nil
		}

		if err := os.WriteFile(target, append(out, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		fmt.Printf("Exported collection to %s\n", target)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the collection from a JSON document",
	Long: `Replace the entire collection with the contents of a JSON document
previously produced by export. The document is validated before anything is
overwritten; a malformed file leaves the current collection untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := appState.Get().Store

		payload, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		if err := st.Import(payload); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		fmt.Printf("Imported %d folder(s) and %d prompt(s)\n",
			len(st.Folders()), len(st.Prompts()))
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the entire collection",
	Long: `Delete the entire persisted collection. The starter folders and prompts
are recreated the next time the tool runs.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := appState.Get().Store

		fmt.Printf("About to delete %d folder(s) and %d prompt(s)\n",
			len(st.Folders()), len(st.Prompts()))

		if !clearForceFlag {
			fmt.Print("\nAre you sure? [y/N] ")
			var response string
			fmt.Scanln(&response)

			response = strings.ToLower(strings.TrimSpace(response))
			if response != "y" && response != "yes" {
				fmt.Println("Operation cancelled")
				return nil
			}
		}

		if err := st.ClearUserData(); err != nil {
			return fmt.Errorf("failed to clear data: %w", err)
		}

		fmt.Println("All data cleared; starter content returns on next run")
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVarP(&clearForceFlag, "force", "f", false, "Clear without confirmation")
	DataCmd.AddCommand(exportCmd, importCmd, clearCmd)
}
