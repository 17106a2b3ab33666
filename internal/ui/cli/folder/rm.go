package folder

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptbox/promptbox/internal/appState"
)

var deleteCmd = &cobra.Command{
	Use:   "rm [folder]",
	Short: "Delete a folder and all prompts inside it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := appState.Get().Store

		f, err := st.FindFolder(args[0])
		if err != nil {
			return fmt.Errorf("failed to find folder: %w", err)
		}
		if f.IsSystem {
			fmt.Printf("%q is a built-in folder and cannot be deleted\n", f.Name)
			return nil
		}

		owned := st.PromptsInFolder(f.ID)
		fmt.Printf("About to delete folder %q and %d prompt(s) inside it\n", f.Name, len(owned))

		if !forceFlag {
			fmt.Print("\nAre you sure? [y/N] ")
			var response string
			fmt.Scanln(&response)

			response = strings.ToLower(strings.TrimSpace(response))
			if response != "y" && response != "yes" {
				fmt.Println("Operation cancelled")
				return nil
			}
		}

		if err := st.DeleteFolder(f.ID); err != nil {
			return fmt.Errorf("failed to delete folder: %w", err)
		}

		fmt.Println("Folder deleted")
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Delete without confirmation")
}
