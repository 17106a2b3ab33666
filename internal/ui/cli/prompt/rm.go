package prompt

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptbox/promptbox/internal/appState"
	"github.com/promptbox/promptbox/internal/ui/cli/format"
)

var deleteCmd = &cobra.Command{
	Use:   "rm [prompt]",
	Short: "Delete a prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := appState.Get().Store

		p, err := st.FindPrompt(args[0])
		if err != nil {
			return fmt.Errorf("failed to find prompt: %w", err)
		}

		fmt.Printf("About to delete prompt %q (%s)\n", p.Title, format.ShortID(p.ID))

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

		if err := st.DeletePrompt(p.ID); err != nil {
			return fmt.Errorf("failed to delete prompt: %w", err)
		}

		fmt.Println("Prompt deleted")
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Delete without confirmation")
}
